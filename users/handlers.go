package users

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/utils"
)

const moduleName = "users"

// sessionLifespan bounds the redis session entry, matching token expiry.
const sessionLifespan = 24 * time.Hour

type registerInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,userpwd"`
	RoleID    string `json:"role_id" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,userpwd"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": status, "success": false, "message": message})
}

// Register creates an application account with a hashed password and the
// referenced role attached.
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}

		ctx := c.Request.Context()
		db := config.GetMongoDB()
		email := strings.ToLower(strings.TrimSpace(input.Email))

		count, err := db.Collection(models.CollectionUsers).CountDocuments(ctx, bson.M{"email": email, "is_deleted": false})
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "Register", "count users", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		if count > 0 {
			respondError(c, http.StatusConflict, "Email already registered.")
			return
		}

		roleID, err := primitive.ObjectIDFromHex(input.RoleID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid role id.")
			return
		}
		var role models.Role
		err = db.Collection(models.CollectionRoles).FindOne(ctx, bson.M{"_id": roleID, "is_deleted": false}).Decode(&role)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusBadRequest, "Role not found.")
			return
		}
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "Register", "find role", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "Register", "hash password", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		now := time.Now().UTC()
		user := models.User{
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Email:     email,
			Password:  string(hashed),
			Role:      role,
			Status:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		res, err := db.Collection(models.CollectionUsers).InsertOne(ctx, user)
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "Register", "insert user", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			user.ID = oid
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data":    user,
			"message": "User registered successfully.",
		})
	}
}

// Login verifies credentials, issues a JWT and caches the session in redis.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))
		var user models.User
		err := config.GetMongoDB().Collection(models.CollectionUsers).
			FindOne(c.Request.Context(), bson.M{"email": email, "is_deleted": false, "status": true}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "Login", "find user", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		if err := utils.ComparePassword(user.Password, input.Password); err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid email or password.")
			return
		}

		token, err := utils.JwtGenerate(user.ID.Hex(), user.Email, user.Role.Name)
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "Login", "generate token", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		if err := config.SetRedisValue("User:"+user.Email, token, sessionLifespan); err != nil {
			config.LogError(config.GetLogger(), moduleName, "Login", "cache session", nil, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data": gin.H{
				"token":  token,
				"userId": user.ID.Hex(),
				"email":  user.Email,
				"role":   user.Role.Name,
			},
			"message": "Login successfully.",
		})
	}
}

// ListUsers returns all non-deleted application accounts.
func ListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := config.GetMongoDB().Collection(models.CollectionUsers).
			Find(c.Request.Context(), bson.M{"is_deleted": false})
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "ListUsers", "find users", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		defer cursor.Close(c.Request.Context())

		users := make([]models.User, 0)
		if err := cursor.All(c.Request.Context(), &users); err != nil {
			config.LogError(config.GetLogger(), moduleName, "ListUsers", "decode users", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data":    users,
			"message": "Get all users successfully.",
		})
	}
}

// ChangePassword rotates the caller's password after verifying the old one.
func ChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input changePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}

		userId, ok := utils.GetUserIdFromContext(c.Request.Context())
		if !ok {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		oid, err := primitive.ObjectIDFromHex(userId)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := c.Request.Context()
		db := config.GetMongoDB()

		var user models.User
		if err := db.Collection(models.CollectionUsers).FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := utils.ComparePassword(user.Password, input.OldPassword); err != nil {
			respondError(c, http.StatusUnauthorized, "Old password does not match.")
			return
		}

		hashed, err := utils.HashPassword(input.NewPassword)
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "ChangePassword", "hash password", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		_, err = db.Collection(models.CollectionUsers).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
			"$set": bson.M{"password": string(hashed), "updatedAt": time.Now().UTC()},
		})
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "ChangePassword", "update password", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"message": "Password changed successfully.",
		})
	}
}

// Logout drops the caller's redis session, invalidating the token early.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := utils.GetEmailFromContext(c.Request.Context())
		if !ok {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if err := config.RemoveRedisKey("User:" + email); err != nil {
			config.LogError(config.GetLogger(), moduleName, "Logout", "remove session", nil, err)
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"message": "Logout successfully.",
		})
	}
}
