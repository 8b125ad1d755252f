package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("...!?  "))
	assert.Equal(t, []string{"fast", "reliable"}, Tokenize("fast, reliable!"))
	assert.Equal(t, []string{"The", "system_2", "must", "login"}, Tokenize("The system_2 must: login."))
}

func TestTokenizeUnicodeWords(t *testing.T) {
	// Word characters are Unicode letters and digits, not just ASCII, so
	// accented words stay whole.
	assert.Equal(t, []string{"héllo"}, Tokenize("héllo"))
	assert.Equal(t, []string{"héllo", "wörld"}, Tokenize("héllo, wörld!"))
	assert.Equal(t, []string{"система", "должна", "быть", "fast"}, Tokenize("система должна быть fast"))
}

func TestTokenizeIsTotal(t *testing.T) {
	// No input should ever panic or return nil.
	for _, input := range []string{"", " ", "\x00", "héllo wörld", "\n\t"} {
		assert.NotNil(t, Tokenize(input))
	}
}

func TestRemoveStopWords(t *testing.T) {
	got := RemoveStopWords([]string{"The", "system", "is", "fast"})
	assert.Equal(t, []string{"system", "fast"}, got)
}

func TestRemoveStopWordsCaseInsensitive(t *testing.T) {
	got := RemoveStopWords([]string{"THE", "Login", "SHOULD", "Be", "Secure"})
	assert.Equal(t, []string{"Login", "Be", "Secure"}, got)
}

func TestRemoveStopWordsPreservesOrderAndCasing(t *testing.T) {
	got := RemoveStopWords([]string{"Upload", "and", "Download", "for", "Users"})
	assert.Equal(t, []string{"Upload", "Download", "Users"}, got)
}

func TestClassifyFunctionalPrecedence(t *testing.T) {
	// "login" (functional) wins over "secure" (non-functional).
	assert.Equal(t, CategoryFunctional, Classify([]string{"secure", "login"}))
	assert.Equal(t, CategoryFunctional, Classify([]string{"LOGIN"}))
}

func TestClassifyNonFunctional(t *testing.T) {
	assert.Equal(t, CategoryNonFunctional, Classify([]string{"scalable"}))
	assert.Equal(t, CategoryNonFunctional, Classify([]string{"system", "must", "be", "Fast"}))
}

func TestClassifyUncertain(t *testing.T) {
	assert.Equal(t, CategoryUncertain, Classify([]string{"banana", "stand"}))
	assert.Equal(t, CategoryUncertain, Classify(nil))
}

func TestClassifyDeterministic(t *testing.T) {
	tokens := []string{"allow", "login", "be", "secure"}
	first := Classify(tokens)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(tokens))
	}
}
