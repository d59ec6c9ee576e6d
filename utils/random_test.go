package utils

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomString(t *testing.T) {

	randoString := RandomString(20)
	assert.Len(t, randoString, 20)
	t.Logf("RandoString1: %s", randoString)

	time.Sleep(1 * time.Nanosecond)

	anotherRandoString := RandomString(20)
	assert.Len(t, anotherRandoString, 20)
	t.Logf("RandoString2: %s", anotherRandoString)

	assert.NotEqual(t, randoString, anotherRandoString)
}

func TestRandomStringFromSource(t *testing.T) {

	src := rand.NewSource(time.Now().UnixNano())

	randoString := RandomStringFromSource(10, src)
	assert.NotEqual(t, "", randoString)
	t.Logf("RandoString1: %s", randoString)

	anotherRandoString := RandomStringFromSource(10, src)
	assert.NotEqual(t, "", anotherRandoString)
	t.Logf("RandoString2: %s", anotherRandoString)

	assert.NotEqual(t, randoString, anotherRandoString)
}

func TestRandomStringIsHostSafe(t *testing.T) {

	randoString := RandomStringFromSource(64, rand.NewSource(42))
	for _, r := range randoString {
		assert.True(t, strings.ContainsRune(letterBytes, r), "rune %q not host-safe", r)
	}
}

func TestShuffleSourcesDiffer(t *testing.T) {

	first := RandomStringFromSource(16, ShuffleSource())
	time.Sleep(1 * time.Nanosecond)
	second := RandomStringFromSource(16, ShuffleSource())

	assert.NotEqual(t, first, second)
}
