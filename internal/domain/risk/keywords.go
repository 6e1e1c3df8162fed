package risk

import (
	"regexp"
	"strconv"
	"strings"
)

// TriggerSet maps one classification outcome to the ordered substring
// patterns that produce it. Patterns are matched case-insensitively against
// normalized text; the first set with any matching pattern wins, so set
// order is significant.
type TriggerSet struct {
	Outcome  string
	Patterns []string
}

// Dictionary is an ordered keyword classifier over free-text clinical notes.
// Dictionaries can be extended or localized without touching the scoring
// rules.
type Dictionary struct {
	sets []TriggerSet
}

func NewDictionary(sets ...TriggerSet) Dictionary {
	return Dictionary{sets: sets}
}

// Normalize lower-cases text and collapses runs of whitespace to single
// spaces so that pattern matching is layout-independent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Classify returns the outcome of the first trigger set containing any
// pattern found in the normalized text. No match returns ("", false); the
// caller substitutes its documented default, never an error.
func (d Dictionary) Classify(text string) (string, bool) {
	norm := Normalize(text)
	if norm == "" {
		return "", false
	}
	for _, set := range d.sets {
		for _, p := range set.Patterns {
			if strings.Contains(norm, p) {
				return set.Outcome, true
			}
		}
	}
	return "", false
}

// Matches reports whether any pattern of any set occurs in the text. Used
// for boolean outcomes with a single trigger set.
func (d Dictionary) Matches(text string) bool {
	_, ok := d.Classify(text)
	return ok
}

// Bilingual trigger dictionaries, English plus Indonesian. Registered in
// evaluation order; more specific buckets come before catch-alls.
var (
	diabetesTerms = NewDictionary(TriggerSet{Outcome: "diabetes", Patterns: []string{
		"diabetes", "diabetic", "diabetes mellitus", "kencing manis", "gula darah tinggi",
	}})

	hypertensionTerms = NewDictionary(TriggerSet{Outcome: "hypertension", Patterns: []string{
		"hypertension", "high blood pressure", "hipertensi", "darah tinggi", "tekanan darah tinggi",
	}})

	dyslipidemiaTerms = NewDictionary(TriggerSet{Outcome: "dyslipidemia", Patterns: []string{
		"dyslipidemia", "high cholesterol", "hyperlipidemia", "kolesterol tinggi", "dislipidemia",
	}})

	cardiovascularTerms = NewDictionary(TriggerSet{Outcome: "cardiovascular", Patterns: []string{
		"heart disease", "coronary", "cardiovascular", "stroke", "penyakit jantung", "serangan jantung",
	}})

	smokingTerms = NewDictionary(TriggerSet{Outcome: "smoking", Patterns: []string{
		"smok", "cigarette", "tobacco", "merokok", "perokok", "rokok",
	}})

	activityTerms = NewDictionary(
		TriggerSet{Outcome: string(ActivityHigh), Patterns: []string{
			"daily", "every day", "setiap hari", "tiap hari",
		}},
		TriggerSet{Outcome: string(ActivityModerate), Patterns: []string{
			"weekly", "per week", "mingguan", "seminggu",
		}},
	)

	alcoholTerms = NewDictionary(
		TriggerSet{Outcome: string(AlcoholHeavy), Patterns: []string{
			"heavy drink", "alcoholic", "peminum berat", "sering minum alkohol",
		}},
		TriggerSet{Outcome: string(AlcoholModerate), Patterns: []string{
			"moderate drink", "drinks regularly", "minum alkohol sedang",
		}},
		TriggerSet{Outcome: string(AlcoholLight), Patterns: []string{
			"occasional drink", "social drink", "light drink", "kadang minum", "sesekali minum",
		}},
	)

	gestationalTerms = NewDictionary(TriggerSet{Outcome: "gestational", Patterns: []string{
		"gestational diabetes", "diabetes gestasional", "diabetes kehamilan", "diabetes saat hamil",
	}})

	pcosTerms = NewDictionary(TriggerSet{Outcome: "pcos", Patterns: []string{
		"pcos", "polycystic", "sindrom ovarium polikistik",
	}})

	stressTerms = NewDictionary(
		TriggerSet{Outcome: "high", Patterns: []string{
			"high stress", "severe stress", "very stressed", "stres berat", "sangat stres",
		}},
		TriggerSet{Outcome: "moderate", Patterns: []string{
			"moderate stress", "some stress", "stres sedang", "cukup stres",
		}},
		TriggerSet{Outcome: "low", Patterns: []string{
			"low stress", "relaxed", "stres ringan", "santai",
		}},
	)

	sleepQualityTerms = NewDictionary(
		TriggerSet{Outcome: "poor", Patterns: []string{
			"poor sleep", "insomnia", "trouble sleeping", "sulit tidur", "susah tidur", "tidur buruk",
		}},
		TriggerSet{Outcome: "good", Patterns: []string{
			"sleeps well", "good sleep", "tidur nyenyak", "tidur cukup",
		}},
	)

	depressionTerms = NewDictionary(TriggerSet{Outcome: "depressed", Patterns: []string{
		"depress", "hopeless", "depresi", "putus asa", "murung",
	}})
)

// Stress buckets as reported-scale values on the 0-10 scale the scoring
// rules read.
var stressBuckets = map[string]int{"high": 8, "moderate": 5, "low": 2}

// Sleep quality buckets on the 0-10 scale.
var sleepQualityBuckets = map[string]int{"poor": 3, "good": 8}

var sleepHoursPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours|hour|hrs|jam)`)

// ExtractSleepHours pulls the first "<number> hours" (or "jam") occurrence
// out of free text. An unparseable match degrades to absent.
func ExtractSleepHours(text string) *float64 {
	m := sleepHoursPattern.FindStringSubmatch(Normalize(text))
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}
