package parcel_codes

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	codeAlphabet         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength           = 6
	trackingNumberLength = 10
)

// Factory выдаёт трек-номера, коды приёма/выдачи посылки и идентификаторы событий.
type Factory struct {
	random io.Reader
}

func New() *Factory {
	return &Factory{
		random: rand.Reader,
	}
}

// NewWithReader - для тестов с детерминированным источником.
func NewWithReader(random io.Reader) *Factory {
	return &Factory{
		random: random,
	}
}

// TrackingNumber - первые 10 hex-символов uuid4 в верхнем регистре.
func (f *Factory) TrackingNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:trackingNumberLength])
}

func (f *Factory) HandoverCode() (string, error) {
	alphabetLen := big.NewInt(int64(len(codeAlphabet)))

	var code strings.Builder
	code.Grow(codeLength)
	for range codeLength {
		n, err := rand.Int(f.random, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		code.WriteByte(codeAlphabet[n.Int64()])
	}
	return code.String(), nil
}

func (f *Factory) EventID() string {
	return uuid.NewString()
}
