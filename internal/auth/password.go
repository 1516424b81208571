// Package auth отвечает за хэширование паролей учётных записей.
// Исходная схема хранила пароли открытым текстом; хэширование добавлено
// сознательно и не меняет внешний контракт (пароль никогда не отдаётся наружу).
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword возвращает bcrypt-хэш пароля для хранения в БД.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword сверяет пароль с хэшем из хранилища.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
