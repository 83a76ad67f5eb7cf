package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	registrationLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	registrationDigits  = "0123456789"
)

func GenerateID() string {
	return uuid.New().String()
}

// GenerateRegistration gera uma placa no formato AAA-9999
func GenerateRegistration() (string, error) {
	letters, err := gonanoid.Generate(registrationLetters, 3)
	if err != nil {
		return "", err
	}

	digits, err := gonanoid.Generate(registrationDigits, 4)
	if err != nil {
		return "", err
	}

	return letters + "-" + digits, nil
}
