package services

// NewAuthServiceWithCost lets tests hash with bcrypt.MinCost.
var NewAuthServiceWithCost = newAuthService
