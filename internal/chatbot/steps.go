package chatbot

// Step - шаг сценария, на который отвечает бот
type Step string

const (
	StepGreeting          Step = "greeting"
	StepNotSafe           Step = "not_safe"
	StepSafe              Step = "safe"
	StepDirections        Step = "directions"
	StepHelpline          Step = "helpline"
	StepTransport         Step = "transport"
	StepAlertContact      Step = "alert_contact"
	StepFindSafepoints    Step = "find_safepoints"
	StepAbout             Step = "about"
	StepEmergencyContacts Step = "emergency_contacts"
	StepEnd               Step = "end"
	StepMenu              Step = "menu"
	StepAskSafety         Step = "ask_safety"
	StepAlertSent         Step = "alert_sent"
	StepCapabilities      Step = "capabilities"
)

// Подписи кнопок, которые бот предлагает пользователю
const (
	OptionYes               = "Yes"
	OptionNo                = "No"
	OptionFindDirections    = "Find Directions"
	OptionGetDirections     = "Get Directions"
	OptionCallHelpline      = "Call Helpline"
	OptionRequestTransport  = "Request Transport"
	OptionSendAlert         = "Send Alert to Contact"
	OptionFindNearest       = "Find Nearest SafePoints"
	OptionFindSafepoints    = "Find SafePoints"
	OptionLearnAbout        = "Learn About SafePoint"
	OptionEmergencyContacts = "Emergency Contacts"
	OptionSafeNow           = "I'm Safe Now"
	OptionEndChat           = "End Chat"
	OptionBackToMenu        = "Back to Menu"
)

// optionSteps - переход по нажатой кнопке
var optionSteps = map[string]Step{
	OptionNo:                StepNotSafe,
	OptionYes:               StepSafe,
	OptionFindDirections:    StepDirections,
	OptionGetDirections:     StepDirections,
	OptionCallHelpline:      StepHelpline,
	OptionRequestTransport:  StepTransport,
	OptionSendAlert:         StepAlertContact,
	OptionFindNearest:       StepFindSafepoints,
	OptionFindSafepoints:    StepFindSafepoints,
	OptionLearnAbout:        StepAbout,
	OptionEmergencyContacts: StepEmergencyContacts,
	OptionSafeNow:           StepEnd,
	OptionEndChat:           StepEnd,
	OptionBackToMenu:        StepMenu,
}

// StepForOption возвращает шаг для подписи кнопки
func StepForOption(option string) (Step, bool) {
	step, ok := optionSteps[option]
	return step, ok
}
