package analyzer

import (
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// countWords counts whitespace-delimited tokens.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// countSentences counts runs of sentence-ending punctuation. Returns 1 for
// text without any so downstream averages never divide by zero.
func countSentences(text string) int {
	n := len(sentenceRe.FindAllStringIndex(text, -1))
	if n == 0 {
		return 1
	}
	return n
}

// countSyllables approximates the syllable count of a single word by counting
// vowel-group starts, with a silent-e adjustment. Short words count as one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	if len(word) <= 3 {
		return 1
	}

	count := 0
	prevVowel := false
	runes := []rune(word)
	for i, c := range runes {
		isVowel := strings.ContainsRune("aeiouy", c)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel

		// Trailing silent e
		if i == len(runes)-1 && c == 'e' && count > 1 {
			count--
		}
	}

	if count == 0 {
		return 1
	}
	return count
}

// fleschKincaid computes the Flesch Reading Ease score, clamped to [0, 100].
func fleschKincaid(text string) float64 {
	words := countWords(text)
	sentences := countSentences(text)
	syllables := 0
	for _, w := range strings.Fields(text) {
		syllables += countSyllables(w)
	}

	if words == 0 || sentences == 0 {
		return 0.0
	}

	score := 206.835 -
		(1.015 * (float64(words) / float64(sentences))) -
		(84.6 * (float64(syllables) / float64(words)))

	if score < 0 {
		return 0.0
	}
	if score > 100 {
		return 100.0
	}
	return score
}

// keywordDensity returns keyword occurrences per hundred words. Matching is
// case-insensitive and substring-based, so a keyword inside a longer word is
// counted too; the scoring bands were tuned against that behavior.
func keywordDensity(text, keyword string) float64 {
	if keyword == "" {
		return 0.0
	}

	words := countWords(text)
	if words == 0 {
		return 0.0
	}

	count := strings.Count(strings.ToLower(text), strings.ToLower(keyword))
	return float64(count) / float64(words) * 100.0
}
