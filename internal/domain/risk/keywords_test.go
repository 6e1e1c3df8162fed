package risk

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"Diabetes  Mellitus", "diabetes mellitus"},
		{"  RIWAYAT\tKencing   Manis\n", "riwayat kencing manis"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDiabetesTerms_Bilingual(t *testing.T) {
	positives := []string{
		"Mother has type 2 diabetes",
		"Father: DIABETIC since 2010",
		"ayah menderita kencing manis",
		"ibunya punya riwayat gula darah tinggi",
	}
	for _, text := range positives {
		if !diabetesTerms.Matches(text) {
			t.Errorf("expected diabetes match for %q", text)
		}
	}
	negatives := []string{
		"",
		"no significant family history",
		"tidak ada riwayat keluarga",
	}
	for _, text := range negatives {
		if diabetesTerms.Matches(text) {
			t.Errorf("unexpected diabetes match for %q", text)
		}
	}
}

func TestSmokingTerms(t *testing.T) {
	for _, text := range []string{
		"patient smokes a pack a day",
		"heavy smoker",
		"pasien perokok aktif",
		"merokok sejak remaja",
	} {
		if !smokingTerms.Matches(text) {
			t.Errorf("expected smoking match for %q", text)
		}
	}
	if smokingTerms.Matches("quit caffeine last year") {
		t.Error("unexpected smoking match")
	}
}

func TestActivityTerms_FirstSetWins(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"jogs daily", string(ActivityHigh), true},
		{"olahraga setiap hari", string(ActivityHigh), true},
		{"gym twice per week", string(ActivityModerate), true},
		{"jalan kaki seminggu sekali", string(ActivityModerate), true},
		// "daily" outranks "weekly" because the high set is evaluated first.
		{"walks daily, gym weekly", string(ActivityHigh), true},
		{"mostly sedentary", "", false},
	}
	for _, tt := range tests {
		got, ok := activityTerms.Classify(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAlcoholTerms(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"heavy drinker on weekends", string(AlcoholHeavy)},
		{"peminum berat", string(AlcoholHeavy)},
		{"drinks regularly with dinner", string(AlcoholModerate)},
		{"occasional drink at parties", string(AlcoholLight)},
		{"kadang minum bir", string(AlcoholLight)},
	}
	for _, tt := range tests {
		got, ok := alcoholTerms.Classify(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Classify(%q) = (%q, %v), want %q", tt.text, got, ok, tt.want)
		}
	}
	if _, ok := alcoholTerms.Classify("does not drink"); ok {
		t.Error("abstinent note should not classify")
	}
}

func TestStressAndSleepBuckets(t *testing.T) {
	if outcome, ok := stressTerms.Classify("reports high stress at work"); !ok || stressBuckets[outcome] != 8 {
		t.Errorf("high stress bucket = %d, want 8", stressBuckets[outcome])
	}
	if outcome, ok := stressTerms.Classify("stres sedang karena pekerjaan"); !ok || stressBuckets[outcome] != 5 {
		t.Errorf("moderate stress bucket = %d, want 5", stressBuckets[outcome])
	}
	if outcome, ok := sleepQualityTerms.Classify("chronic insomnia"); !ok || sleepQualityBuckets[outcome] != 3 {
		t.Errorf("poor sleep bucket = %d, want 3", sleepQualityBuckets[outcome])
	}
	if outcome, ok := sleepQualityTerms.Classify("tidur nyenyak setiap malam"); !ok || sleepQualityBuckets[outcome] != 8 {
		t.Errorf("good sleep bucket = %d, want 8", sleepQualityBuckets[outcome])
	}
}

func TestExtractSleepHours(t *testing.T) {
	tests := []struct {
		text string
		want *float64
	}{
		{"sleeps 6 hours per night", f64(6)},
		{"about 7.5 hours of sleep", f64(7.5)},
		{"tidur 5 jam semalam", f64(5)},
		{"sleeps 4hrs", f64(4)},
		{"poor sleep, duration unknown", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := ExtractSleepHours(tt.text)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ExtractSleepHours(%q) = %v, want nil", tt.text, *got)
		case tt.want != nil && got == nil:
			t.Errorf("ExtractSleepHours(%q) = nil, want %v", tt.text, *tt.want)
		case tt.want != nil && *got != *tt.want:
			t.Errorf("ExtractSleepHours(%q) = %v, want %v", tt.text, *got, *tt.want)
		}
	}
}

func TestGestationalAndPCOSTerms(t *testing.T) {
	if !gestationalTerms.Matches("gestational diabetes during second pregnancy") {
		t.Error("expected gestational match (English)")
	}
	if !gestationalTerms.Matches("riwayat diabetes saat hamil") {
		t.Error("expected gestational match (Indonesian)")
	}
	if !pcosTerms.Matches("diagnosed with PCOS in 2019") {
		t.Error("expected pcos match")
	}
	if !pcosTerms.Matches("sindrom ovarium polikistik") {
		t.Error("expected pcos match (Indonesian)")
	}
}

func TestPriorDiagnosisTerms(t *testing.T) {
	if !hypertensionTerms.Matches("essential hypertension, controlled") {
		t.Error("expected hypertension match")
	}
	if !hypertensionTerms.Matches("riwayat darah tinggi") {
		t.Error("expected hypertension match (Indonesian)")
	}
	if !dyslipidemiaTerms.Matches("kolesterol tinggi sejak 2020") {
		t.Error("expected dyslipidemia match (Indonesian)")
	}
	if !cardiovascularTerms.Matches("prior stroke in 2018") {
		t.Error("expected cardiovascular match")
	}
	if !depressionTerms.Matches("screens positive for depression") {
		t.Error("expected depression match")
	}
}
