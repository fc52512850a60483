package controllers

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"denuncias-be/config"
	"denuncias-be/models"
	authUtils "denuncias-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func generateVerificationCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}

// RegisterUser handles citizen registration. The account stays unverified
// until the emailed code is confirmed.
func RegisterUser(c *gin.Context) {
	var input struct {
		DNI             string `json:"dni" binding:"required,max=15"`
		FirstNames      string `json:"firstNames" binding:"required,max=100"`
		PaternalSurname string `json:"paternalSurname" binding:"required,max=60"`
		MaternalSurname string `json:"maternalSurname" binding:"max=60"`
		BirthDate       string `json:"birthDate"`
		Phone           string `json:"phone" binding:"max=20"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=6"`
		Address         string `json:"address" binding:"max=200"`
		District        string `json:"district" binding:"max=100"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{
		"$or": []bson.M{{"email": input.Email}, {"dni": input.DNI}},
	})
	if err != nil {
		log.Println("Error checking existing user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El correo o DNI ya está registrado"})
		return
	}

	user := models.User{
		DNI:             input.DNI,
		FirstNames:      input.FirstNames,
		PaternalSurname: input.PaternalSurname,
		MaternalSurname: input.MaternalSurname,
		BirthDate:       input.BirthDate,
		Phone:           input.Phone,
		Email:           input.Email,
		Password:        input.Password,
		Address:         input.Address,
		District:        input.District,
		EmailVerified:   false,
		IsAdmin:         false,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	result, err := userCollection.InsertOne(ctx, user)
	if err != nil {
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	code := generateVerificationCode()
	if err := config.StoreCode("verify", input.Email, code); err != nil {
		log.Println("Error storing verification code:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if err := authUtils.SendVerificationEmail(input.Email, code, input.FirstNames); err != nil {
		// The account exists; the user can request a fresh code via login retry.
		log.Println("Error sending verification email:", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Usuario registrado. Revisa tu correo para verificar tu cuenta.",
		"userId":  result.InsertedID,
	})
}

// VerifyEmail confirms the emailed code and marks the account verified.
func VerifyEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required,len=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !config.CheckCode("verify", input.Email, input.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código de verificación incorrecto o expirado"})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := userCollection.UpdateOne(ctx,
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{"emailVerified": true, "updatedAt": time.Now()}},
	)
	if err != nil || result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verificado exitosamente",
	})
}

// LoginUser handles user login. Unverified accounts are refused before the
// password is even checked.
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
		return
	}

	if !user.EmailVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Por favor verifica tu correo electrónico primero"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
		return
	}

	token, err := authUtils.GenerateToken(&user)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// GetMe retrieves the authenticated user's profile
func GetMe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = userCollection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ForgotPassword emails a password recovery code.
func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.Println("Error looking up user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	code := generateVerificationCode()
	if err := config.StoreCode("reset", input.Email, code); err != nil {
		log.Println("Error storing reset code:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if err := authUtils.SendPasswordResetEmail(input.Email, code); err != nil {
		log.Println("Error sending reset email:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Código de recuperación enviado",
	})
}

// ResetPassword validates the recovery code and replaces the password.
func ResetPassword(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required,len=6"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !config.CheckCode("reset", input.Email, input.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código inválido o expirado"})
		return
	}

	user := models.User{Password: input.NewPassword}
	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := userCollection.UpdateOne(ctx,
		bson.M{"email": input.Email},
		bson.M{"$set": bson.M{"password": user.Password, "updatedAt": time.Now()}},
	)
	if err != nil || result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contraseña actualizada exitosamente",
	})
}
