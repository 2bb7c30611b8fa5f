package i18n

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"english label", LangEnglish, "form.fullName", "Full Name"},
		{"arabic label", LangArabic, "form.fullName", "الاسم الكامل"},
		{"arabic validation", LangArabic, "validation.required", "هذا الحقل مطلوب"},
		{"unknown lang falls back to english", "fr", "buttons.next", "Next"},
		{"unknown key returns key", LangEnglish, "no.such.key", "no.such.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestEnglishCoversArabic(t *testing.T) {
	for key := range arabic {
		if _, ok := english[key]; !ok {
			t.Errorf("arabic key %q has no english counterpart", key)
		}
	}
	for key := range english {
		if _, ok := arabic[key]; !ok {
			t.Errorf("english key %q has no arabic counterpart", key)
		}
	}
}

func TestToggle(t *testing.T) {
	if got := Toggle(LangEnglish); got != LangArabic {
		t.Errorf("Toggle(en) = %q, want ar", got)
	}
	if got := Toggle(LangArabic); got != LangEnglish {
		t.Errorf("Toggle(ar) = %q, want en", got)
	}
}

func TestIsRTL(t *testing.T) {
	if IsRTL(LangEnglish) {
		t.Error("english should not be RTL")
	}
	if !IsRTL(LangArabic) {
		t.Error("arabic should be RTL")
	}
}
