package service

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/avc-dev/urlshort/internal/model"
)

const (
	DefaultCodeLength = 6
	// randomBytes даёт 48 бит энтропии, в base62 это от 1 до 9 символов
	randomBytes = 6
	Alphabet    = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CodeGenerator генерирует случайные коды в алфавите base62
type CodeGenerator struct {
	read func(b []byte) (int, error)
}

// NewCodeGenerator создает генератор на crypto/rand
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{
		read: rand.Read,
	}
}

// GenerateCode генерирует случайный код длиной не больше length.
// Код обрезается слева, поэтому для коротких длин энтропия меньше 62^length.
func (g *CodeGenerator) GenerateCode(length int) model.Code {
	buf := make([]byte, 8)
	// crypto/rand.Read не возвращает ошибок
	_, _ = g.read(buf[8-randomBytes:])

	return model.Code(truncate(Encode(binary.BigEndian.Uint64(buf)), length))
}

// Encode кодирует число в base62: сначала цифры, затем строчные, затем прописные буквы
func Encode(n uint64) string {
	if n == 0 {
		return Alphabet[:1]
	}

	base := uint64(len(Alphabet))
	var buf [11]byte
	i := len(buf)

	for n > 0 {
		i--
		buf[i] = Alphabet[n%base]
		n /= base
	}

	return string(buf[i:])
}

func truncate(s string, length int) string {
	if length < 0 {
		length = 0
	}
	if len(s) > length {
		return s[:length]
	}
	return s
}
