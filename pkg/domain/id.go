package domain

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// ID prefixes used by NewID.
const (
	PrefixHotkey = "hk"
	PrefixDeck   = "deck"
	PrefixAction = "act"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns an identifier of the form <prefix>_<unix-millis>_<9 base36 chars>.
func NewID(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('_')
	for range 9 {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}
