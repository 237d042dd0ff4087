package scoring

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"vocabpractice/internal/models"
)

// scoreBracket is one word-count band of the rule table: a half-open score
// range [low, high) and the suggestion returned for sentences in that band.
type scoreBracket struct {
	low        float64
	high       float64
	suggestion string
}

// difficultyRules holds the two word-count cut points and the three brackets
// for one difficulty tier. A sentence of n words falls in bracket 0 when
// n < cuts[0], bracket 1 when n < cuts[1], bracket 2 otherwise.
type difficultyRules struct {
	cuts     [2]int
	brackets [3]scoreBracket
}

var beginnerRules = difficultyRules{
	cuts: [2]int{4, 8},
	brackets: [3]scoreBracket{
		{5.0, 6.5, "ประโยคสั้นไปหน่อย ลองเพิ่มรายละเอียดอีกนิดนะ(ให้คำตอบโดยระบบ Mock AI)"},
		{7.0, 8.5, "ดีมาก! ประโยคของคุณเข้าใจง่ายและถูกต้อง(ให้คำตอบโดยระบบ Mock AI)"},
		{8.5, 10.0, "ยอดเยี่ยมมาก! ประโยคสมบูรณ์และใช้คำศัพท์ได้อย่างเหมาะสม(ให้คำตอบโดยระบบ Mock AI)"},
	},
}

var intermediateRules = difficultyRules{
	cuts: [2]int{6, 10},
	brackets: [3]scoreBracket{
		{4.0, 5.5, "สำหรับคำศัพท์ระดับกลาง ควรเขียนประโยคที่ซับซ้อนกว่านี้(ให้คำตอบโดยระบบ Mock AI)"},
		{6.5, 8.0, "ดี! แต่ลองใช้โครงสร้างประโยคที่หลากหลายมากขึ้น(ให้คำตอบโดยระบบ Mock AI)"},
		{8.0, 9.5, "เยี่ยมมาก! คุณใช้คำศัพท์ได้อย่างเชี่ยวชาญ(ให้คำตอบโดยระบบ Mock AI)"},
	},
}

var advancedRules = difficultyRules{
	cuts: [2]int{8, 12},
	brackets: [3]scoreBracket{
		{3.0, 5.0, "คำศัพท์ระดับสูงต้องการบริบทที่ซับซ้อนมากกว่านี้(ให้คำตอบโดยระบบ Mock AI)"},
		{5.5, 7.5, "พอใช้ได้ แต่ลองแสดงความเข้าใจในความหมายลึกซึ้งของคำมากขึ้น(ให้คำตอบโดยระบบ Mock AI)"},
		{7.5, 9.0, "ประทับใจมาก! คุณเข้าใจและใช้คำศัพท์ขั้นสูงได้อย่างถูกต้อง(ให้คำตอบโดยระบบ Mock AI)"},
	},
}

// FallbackScorer is the deterministic rule-based scorer used when the
// webhook is unavailable
type FallbackScorer struct {
	rng *rand.Rand
}

// NewFallbackScorer creates a fallback scorer. A nil rng gets a time-seeded
// source; tests pass a seeded one for reproducible scores.
func NewFallbackScorer(rng *rand.Rand) *FallbackScorer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FallbackScorer{rng: rng}
}

// Score applies the rule table. The returned level always echoes the
// requested difficulty, and the corrected sentence is never rewritten.
func (f *FallbackScorer) Score(sentence, targetWord, difficulty string) ScoreResult {
	if !strings.Contains(strings.ToLower(sentence), strings.ToLower(targetWord)) {
		return ScoreResult{
			Score:             0.0,
			Level:             difficulty,
			Suggestion:        fmt.Sprintf("ประโยคของคุณต้องมีคำว่า '%s' อยู่ด้วย กรุณาลองใหม่อีกครั้ง!", targetWord),
			CorrectedSentence: fmt.Sprintf("อย่าลืมใช้คำว่า '%s' ในประโยคของคุณ", targetWord),
		}
	}

	rules := rulesFor(difficulty)
	bracket := rules.brackets[bracketIndex(rules.cuts, len(strings.Fields(sentence)))]

	return ScoreResult{
		Score:             roundToTenth(bracket.low + f.rng.Float64()*(bracket.high-bracket.low)),
		Level:             difficulty,
		Suggestion:        bracket.suggestion,
		CorrectedSentence: sentence,
	}
}

// rulesFor selects the rule set for a difficulty tier. Anything that is not
// Beginner or Intermediate is scored with the Advanced expectations.
func rulesFor(difficulty string) difficultyRules {
	switch difficulty {
	case models.DifficultyBeginner:
		return beginnerRules
	case models.DifficultyIntermediate:
		return intermediateRules
	default:
		return advancedRules
	}
}

func bracketIndex(cuts [2]int, wordCount int) int {
	if wordCount < cuts[0] {
		return 0
	}
	if wordCount < cuts[1] {
		return 1
	}
	return 2
}

// roundToTenth rounds to one decimal place
func roundToTenth(score float64) float64 {
	return math.Round(score*10) / 10
}
