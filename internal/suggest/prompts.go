package suggest

import (
	"fmt"

	"github.com/muurk/sanad/internal/form"
)

// FieldKind selects which system instruction is sent to the provider. It is
// related to but distinct from the record field name.
type FieldKind int

const (
	FieldKindFinancialHardship FieldKind = iota
	FieldKindAssistanceNeeded
	FieldKindAdditionalInfo
)

// String returns the wire-stable name of the field kind
func (k FieldKind) String() string {
	switch k {
	case FieldKindFinancialHardship:
		return "financialHardship"
	case FieldKindAssistanceNeeded:
		return "assistanceNeeded"
	case FieldKindAdditionalInfo:
		return "additionalInfo"
	default:
		return fmt.Sprintf("FieldKind(%d)", k)
	}
}

// KindForField maps a record field name to its suggestion kind. Unknown
// fields fall back to the financial hardship kind, mirroring the prompt
// table's own fallback.
func KindForField(field string) FieldKind {
	switch field {
	case form.FieldAssistanceNeeded:
		return FieldKindAssistanceNeeded
	case form.FieldAdditionalInfo:
		return FieldKindAdditionalInfo
	default:
		return FieldKindFinancialHardship
	}
}

// DefaultSeed is the prompt used when the target field is still empty at the
// time the suggestion workflow opens.
const DefaultSeed = "I am unemployed with no income. Help me describe my financial hardship."

// promptPair holds the English and Arabic variants of a system instruction.
type promptPair struct {
	en string
	ar string
}

// systemPrompts is the fixed (kind, language) instruction table.
var systemPrompts = map[FieldKind]promptPair{
	FieldKindFinancialHardship: {
		en: "You are a helpful assistant that helps write social support applications. " +
			"Write a clear and compelling description of financial hardship in English. " +
			"Be honest and respectful.",
		ar: "أنت مساعد ذكي يساعد في كتابة طلبات الدعم الاجتماعي. " +
			"اكتب وصفاً واضحاً ومؤثراً للصعوبات المالية باللغة العربية. كن صادقاً ومهذباً.",
	},
	FieldKindAssistanceNeeded: {
		en: "You are a helpful assistant that helps write social support applications. " +
			"Write a clear description of the type of assistance needed in English. " +
			"Be specific and practical.",
		ar: "أنت مساعد ذكي يساعد في كتابة طلبات الدعم الاجتماعي. " +
			"اكتب وصفاً واضحاً لنوع المساعدة المطلوبة باللغة العربية. كن محدداً وعملياً.",
	},
	FieldKindAdditionalInfo: {
		en: "You are a helpful assistant that helps write social support applications. " +
			"Write additional helpful information in English. Be helpful and respectful.",
		ar: "أنت مساعد ذكي يساعد في كتابة طلبات الدعم الاجتماعي. " +
			"اكتب معلومات إضافية مفيدة باللغة العربية. كن مفيداً ومهذباً.",
	},
}

// SystemPrompt returns the instruction for a (kind, language) pair. Unknown
// kinds use the financial hardship instruction; any language other than "ar"
// uses English.
func SystemPrompt(kind FieldKind, language string) string {
	pair, ok := systemPrompts[kind]
	if !ok {
		pair = systemPrompts[FieldKindFinancialHardship]
	}
	if language == "ar" {
		return pair.ar
	}
	return pair.en
}
