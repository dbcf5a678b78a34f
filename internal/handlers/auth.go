package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"blogplatform/api/internal/auth"
	"blogplatform/api/internal/middleware"
	"blogplatform/api/internal/models"
	"blogplatform/api/internal/store"
	"blogplatform/api/internal/utils"
)

type AuthHandler struct {
	Users  store.Users
	Tokens store.Tokens
	Secret []byte
	Dev    bool
}

// ----------- Request/Response DTOs -------------

type registerReq struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

type profileResp struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// hashPassword is the single hashing path; registration and profile
// updates both go through it, and nothing else ever writes the password
// field.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// splitName turns a single display name into first/last parts.
func splitName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	first = parts[0]
	if len(parts) == 2 {
		last = parts[1]
	}
	return first, last
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// -------------- REGISTER ---------------------

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.FirstName == "" && req.Name != "" {
		req.FirstName, req.LastName = splitName(req.Name)
	}

	if req.FirstName == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if len(req.Password) < 6 {
		utils.JSONError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Password:  hash,
		Role:      models.RoleUser,
	}

	if err := h.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.JSONError(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		internalError(w, err, h.Dev)
		return
	}

	token, err := auth.Issue(user.ID.Hex(), user.Role, h.Secret)
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusCreated, authResp{
		Message: "User registered successfully",
		User:    user.Public(),
		Token:   token,
	})
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// Unknown email and wrong password produce byte-identical responses,
	// so the endpoint cannot be used to enumerate accounts.
	user, err := h.Users.GetByEmail(r.Context(), normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.Issue(user.ID.Hex(), user.Role, h.Secret)
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, authResp{
		Message: "Login successful",
		User:    user.Public(),
		Token:   token,
	})
}

// -------------- LOGOUT -----------------------

// Logout adds the presented token to the revocation list. Idempotent from
// the client's perspective: an undecodable token was never usable and a
// token revoked twice is still revoked, both answer 200.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		utils.JSONError(w, http.StatusBadRequest, "No token provided")
		return
	}

	claims, err := auth.Decode(token)
	if err != nil {
		utils.JSON(w, http.StatusOK, map[string]string{"message": "Token already expired or invalid"})
		return
	}

	err = h.Tokens.Revoke(r.Context(), token, claims.ExpiresAt.Time)
	if err != nil && !errors.Is(err, store.ErrAlreadyRevoked) {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// -------------- PROFILE ----------------------

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	id, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.Users.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, user.Public())
}

type updateProfileReq struct {
	Name      *string `json:"name"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	id, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	var req updateProfileReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	sets := bson.M{}
	if req.Name != nil {
		first, last := splitName(*req.Name)
		sets["firstName"] = first
		sets["lastName"] = last
	}
	if req.FirstName != nil {
		sets["firstName"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		sets["lastName"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		sets["email"] = normalizeEmail(*req.Email)
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			utils.JSONError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		sets["role"] = models.Role(*req.Role)
	}

	// The hash is regenerated only when the plaintext password field is in
	// the request; saves that don't touch it leave the stored hash alone.
	if req.Password != nil {
		if len(*req.Password) < 6 {
			utils.JSONError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		}
		hash, err := hashPassword(*req.Password)
		if err != nil {
			internalError(w, err, h.Dev)
			return
		}
		sets["password"] = hash
	}

	if len(sets) == 0 {
		utils.JSONError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	user, err := h.Users.Update(r.Context(), id, sets)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}
	if errors.Is(err, store.ErrDuplicate) {
		utils.JSONError(w, http.StatusBadRequest, "User with this email already exists")
		return
	}
	if err != nil {
		internalError(w, err, h.Dev)
		return
	}

	utils.JSON(w, http.StatusOK, profileResp{
		Message: "Profile updated successfully",
		User:    user.Public(),
	})
}
