package sentiment

import (
	"math"
	"strings"
	"unicode"
)

const (
	// capsIncr is added to a word's valence when it is shouted in ALL CAPS
	// inside otherwise mixed-case text
	capsIncr = 0.733
	// negationScalar dampens and flips a negated word
	negationScalar = -0.74
	// normAlpha approximates the maximum expected summed valence
	normAlpha = 15.0
	// window of preceding words checked for boosters and negations
	lookback = 3
)

// Scores is the polarity breakdown of one text. Positive, Negative and
// Neutral are proportions summing to 1 (or all zero for empty input);
// Compound is the normalized overall score in [-1, 1].
type Scores struct {
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Compound float64 `json:"compound"`
}

// Analyzer is a rule-based lexicon sentiment model. It holds only maps that
// are never written after construction, so one instance is safe for
// concurrent use.
type Analyzer struct {
	lexicon   map[string]float64
	negations map[string]bool
	boosters  map[string]float64
}

// NewAnalyzer builds the analyzer with the built-in lexicon
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithLexicon(nil)
}

// NewAnalyzerWithLexicon builds the analyzer, overlaying extra valences on
// top of the built-in lexicon.
func NewAnalyzerWithLexicon(extra map[string]float64) *Analyzer {
	lex := make(map[string]float64, len(baseLexicon)+len(extra))
	for w, v := range baseLexicon {
		lex[w] = v
	}
	for w, v := range extra {
		lex[strings.ToLower(w)] = v
	}
	return &Analyzer{
		lexicon:   lex,
		negations: negations,
		boosters:  boosters,
	}
}

type token struct {
	raw        string
	lower      string
	contracted bool // ends in n't
}

// tokenize splits text into words, keeping in-word apostrophes out of the
// lowered form so "don't" and "dont" match the same entry
func tokenize(text string) []token {
	var tokens []token
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		raw := strings.Trim(current.String(), "'")
		current.Reset()
		if len([]rune(raw)) < 2 {
			return
		}
		lowered := strings.ToLower(raw)
		tokens = append(tokens, token{
			raw:        raw,
			lower:      strings.ReplaceAll(lowered, "'", ""),
			contracted: strings.HasSuffix(lowered, "n't"),
		})
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			current.WriteRune(r)
		case r == '\'' || r == '’':
			current.WriteRune('\'')
		default:
			flush()
		}
	}
	flush()
	return tokens
}

func isShouted(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// mixedCase reports whether some but not all words are shouted
func mixedCase(tokens []token) bool {
	shouted := 0
	for _, t := range tokens {
		if isShouted(t.raw) {
			shouted++
		}
	}
	return shouted > 0 && shouted < len(tokens)
}

func (a *Analyzer) isNegation(t token) bool {
	return t.contracted || a.negations[t.lower]
}

// PolarityScores scores text. It is a pure function of its input.
func (a *Analyzer) PolarityScores(text string) Scores {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Scores{}
	}

	capsDiff := mixedCase(tokens)
	valences := make([]float64, len(tokens))

	for i, tok := range tokens {
		if _, ok := a.boosters[tok.lower]; ok {
			continue
		}
		v, ok := a.lexicon[tok.lower]
		if !ok {
			continue
		}

		if capsDiff && isShouted(tok.raw) {
			v += math.Copysign(capsIncr, v)
		}

		negated := false
		for j := 1; j <= lookback && i-j >= 0; j++ {
			prev := tokens[i-j]
			if b, ok := a.boosters[prev.lower]; ok {
				scalar := b
				if v < 0 {
					scalar = -scalar
				}
				if capsDiff && isShouted(prev.raw) {
					scalar += math.Copysign(capsIncr, scalar)
				}
				switch j {
				case 2:
					scalar *= 0.95
				case 3:
					scalar *= 0.9
				}
				v += scalar
			}
			if a.isNegation(prev) {
				negated = true
			}
		}
		if negated {
			v *= negationScalar
		}

		valences[i] = v
	}

	applyContrast(tokens, valences)

	sum := 0.0
	for _, v := range valences {
		sum += v
	}
	emphasis := punctuationEmphasis(text)
	if sum > 0 {
		sum += emphasis
	} else if sum < 0 {
		sum -= emphasis
	}

	return Scores{
		Compound: normalize(sum),
	}.withProportions(valences, emphasis)
}

// applyContrast weights words before "but" down and words after it up
func applyContrast(tokens []token, valences []float64) {
	for i, tok := range tokens {
		if tok.lower != "but" {
			continue
		}
		for j := range valences {
			if j < i {
				valences[j] *= 0.5
			} else if j > i {
				valences[j] *= 1.5
			}
		}
		return
	}
}

// punctuationEmphasis amplifies by up to four exclamation marks and by
// repeated question marks
func punctuationEmphasis(text string) float64 {
	ep := float64(min(strings.Count(text, "!"), 4)) * 0.292
	qm := 0.0
	if q := strings.Count(text, "?"); q > 1 {
		qm = math.Min(float64(q)*0.18, 0.96)
	}
	return ep + qm
}

// normalize maps an unbounded sum into [-1, 1], rounded to four decimals
func normalize(score float64) float64 {
	n := score / math.Sqrt(score*score+normAlpha)
	n = math.Round(n*1e4) / 1e4
	return math.Max(-1, math.Min(1, n))
}

func (s Scores) withProportions(valences []float64, emphasis float64) Scores {
	var pos, neg, neu float64
	for _, v := range valences {
		switch {
		case v > 0:
			pos += v + 1
		case v < 0:
			neg += v - 1
		default:
			neu++
		}
	}
	if pos > math.Abs(neg) {
		pos += emphasis
	} else if pos < math.Abs(neg) {
		neg -= emphasis
	}

	total := pos + math.Abs(neg) + neu
	if total == 0 {
		return s
	}
	s.Positive = pos / total
	s.Negative = math.Abs(neg) / total
	s.Neutral = neu / total
	return s
}
