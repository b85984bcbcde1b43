// Package webhooksig проверяет подписи входящих webhook-запросов
// платёжного процессора: HMAC-SHA256 от сырого тела, hex в заголовке
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader заголовок с подписью события
const SignatureHeader = "X-Payment-Signature"

// Verifier проверяет HMAC-SHA256 подпись тела запроса
type Verifier struct {
	secret []byte
}

// NewVerifier создает новый верификатор с общим секретом процессора
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify сверяет подпись с HMAC-SHA256 от сырого тела
// Сравнение за постоянное время; подпись ожидается в hex
func (v *Verifier) Verify(body []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)

	return hmac.Equal(mac.Sum(nil), expected)
}

// Sign возвращает hex подпись тела (используется в тестах и клиентах)
func (v *Verifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
