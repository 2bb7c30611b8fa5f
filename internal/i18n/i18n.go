// Package i18n provides the English and Arabic label tables for the wizard.
//
// Lookup is by dotted message key (e.g. "form.fullName"). Missing keys fall
// back to English, then to the key itself so a typo is visible instead of
// invisible. The two locales are fixed; the record field values themselves
// are never translated.
package i18n

// Supported language tags.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

// T returns the label for key in the given language.
func T(lang, key string) string {
	if lang == LangArabic {
		if s, ok := arabic[key]; ok {
			return s
		}
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}

// IsRTL reports whether the language is written right to left.
func IsRTL(lang string) bool {
	return lang == LangArabic
}

// Toggle returns the other supported language.
func Toggle(lang string) string {
	if lang == LangArabic {
		return LangEnglish
	}
	return LangArabic
}

var english = map[string]string{
	"app.title":    "Social Support Application",
	"app.subtitle": "Apply for financial assistance",

	"steps.personalDetails":      "Personal Details",
	"steps.financialInformation": "Financial Information",
	"steps.assistanceDetails":    "Assistance Details",
	"steps.progress":             "Step %d of %d",

	"form.fullName":          "Full Name",
	"form.dateOfBirth":       "Date of Birth",
	"form.address":           "Address",
	"form.nationalId":        "National ID",
	"form.phoneNumber":       "Phone Number",
	"form.email":             "Email",
	"form.employmentStatus":  "Employment Status",
	"form.monthlyIncome":     "Monthly Income",
	"form.dependents":        "Dependents",
	"form.financialHardship": "Describe your current financial hardship",
	"form.assistanceNeeded":  "What type of assistance do you need?",
	"form.additionalInfo":    "Additional information (optional)",

	"buttons.next":        "Next",
	"buttons.back":        "Back",
	"buttons.submit":      "Submit Application",
	"buttons.helpMeWrite": "Help Me Write",
	"buttons.accept":      "Accept",
	"buttons.discard":     "Discard",
	"buttons.retry":       "Retry",
	"buttons.startOver":   "Start Over",
	"buttons.quit":        "Quit",

	"validation.required":     "This field is required",
	"validation.invalidEmail": "Please enter a valid email address",

	"ai.suggestedText": "Suggested text",
	"ai.generating":    "Generating suggestion...",
	"ai.editHint":      "Edit the suggestion, then accept or discard it",

	"submit.inProgress":            "Submitting your application...",
	"success.applicationSubmitted": "Your application has been submitted successfully",
	"error.submissionFailed":       "Failed to submit application. Please try again.",

	"language.en": "English",
	"language.ar": "العربية",
}

var arabic = map[string]string{
	"app.title":    "طلب الدعم الاجتماعي",
	"app.subtitle": "تقدم بطلب للحصول على مساعدة مالية",

	"steps.personalDetails":      "البيانات الشخصية",
	"steps.financialInformation": "المعلومات المالية",
	"steps.assistanceDetails":    "تفاصيل المساعدة",
	"steps.progress":             "الخطوة %d من %d",

	"form.fullName":          "الاسم الكامل",
	"form.dateOfBirth":       "تاريخ الميلاد",
	"form.address":           "العنوان",
	"form.nationalId":        "رقم الهوية",
	"form.phoneNumber":       "رقم الهاتف",
	"form.email":             "البريد الإلكتروني",
	"form.employmentStatus":  "الحالة الوظيفية",
	"form.monthlyIncome":     "الدخل الشهري",
	"form.dependents":        "عدد المعالين",
	"form.financialHardship": "صف وضعك المالي الصعب",
	"form.assistanceNeeded":  "ما نوع المساعدة التي تحتاجها؟",
	"form.additionalInfo":    "معلومات إضافية (اختياري)",

	"buttons.next":        "التالي",
	"buttons.back":        "السابق",
	"buttons.submit":      "إرسال الطلب",
	"buttons.helpMeWrite": "ساعدني في الكتابة",
	"buttons.accept":      "قبول",
	"buttons.discard":     "تجاهل",
	"buttons.retry":       "إعادة المحاولة",
	"buttons.startOver":   "البدء من جديد",
	"buttons.quit":        "خروج",

	"validation.required":     "هذا الحقل مطلوب",
	"validation.invalidEmail": "يرجى إدخال بريد إلكتروني صحيح",

	"ai.suggestedText": "النص المقترح",
	"ai.generating":    "جاري إنشاء الاقتراح...",
	"ai.editHint":      "عدّل الاقتراح ثم اقبله أو تجاهله",

	"submit.inProgress":            "جاري إرسال طلبك...",
	"success.applicationSubmitted": "تم إرسال طلبك بنجاح",
	"error.submissionFailed":       "فشل إرسال الطلب. يرجى المحاولة مرة أخرى.",

	"language.en": "English",
	"language.ar": "العربية",
}
