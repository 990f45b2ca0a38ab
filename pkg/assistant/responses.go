package assistant

import (
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// QuickReply is a tappable suggestion attached to a reply. Tapping one
// sends its Action and Data back instead of free text.
type QuickReply struct {
	Text   string `json:"text"`
	Action string `json:"action"`
	Data   string `json:"data,omitempty"`
}

// Quick-reply actions the orchestrator understands.
const (
	ActionAnswer       = "answer"
	ActionCreateReport = "create_report"
	ActionSearch       = "start_search"
	ActionCheckStatus  = "check_status"
	ActionSkip         = "skip"
	ActionComplete     = "complete"
)

// ClientAction tells the caller's UI to move somewhere, optionally
// carrying the collected report draft.
type ClientAction struct {
	Type   string            `json:"type"` // navigate | navigate_with_data
	Route  string            `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

// Response is one assistant turn as seen by the caller. Intent and
// Confidence are set on turns that went through the classifier; they
// exist for transcripts and telemetry and never gate behavior.
type Response struct {
	Text         string        `json:"text"`
	QuickReplies []QuickReply  `json:"quick_replies,omitempty"`
	Progress     string        `json:"progress,omitempty"`
	Action       *ClientAction `json:"action,omitempty"`
	Intent       string        `json:"intent,omitempty"`
	Confidence   float32       `json:"confidence,omitempty"`
}

// QuickReplyInput is what arrives when the user taps a quick reply.
type QuickReplyInput struct {
	Action string `json:"action"`
	Data   string `json:"data,omitempty"`
}

func greetingMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "مرحبا! أنا مساعد البحث عن المفقودات. يمكنني مساعدتك في التبليغ عن شيء ضائع أو البحث في البلاغات الموجودة."
	case language.Darija:
		return "salam! ana l mosa3id dyal L9ani. n9der n3awnek tballegh 3la chi haja tlefat lik, wla t9elleb f lblaghat li kaynin."
	default:
		return "Hi! I'm the lost-and-found assistant. I can help you report something lost or search existing reports."
	}
}

func helpMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "يمكنك أن تكتب لي ما فقدته (مثلا: ضاع كلبي في الرباط) أو أن تبحث في البلاغات (مثلا: هل شاهد أحد قطة في فاس؟)."
	case language.Darija:
		return "t9der tkteb lia chno tlef lik (matalan: tlef lia telephone f casa) wla t9elleb f lblaghat (matalan: wach chefti chi kelb f rabat?)."
	default:
		return "You can tell me what you lost (for example: I lost my dog in Rabat) or search existing reports (for example: has anyone seen a cat in Fes?)."
	}
}

func cancellationMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "تم الإلغاء. كيف يمكنني مساعدتك؟"
	case language.Darija:
		return "safi, lghina. chno bghiti dir daba?"
	default:
		return "Okay, cancelled. What would you like to do?"
	}
}

func restartMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "عذرا، فقدت تتبع المحادثة. لنبدأ من جديد: كيف يمكنني مساعدتك؟"
	case language.Darija:
		return "sme7 lia, tserwelt chwiya. yallah nbdaw men jdid: chno bghiti dir?"
	default:
		return "Sorry, I lost track of our conversation. Let's start over: how can I help?"
	}
}

func tryAgainMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "حدث خطأ من جهتنا. من فضلك حاول مرة أخرى."
	case language.Darija:
		return "w9e3 chi mochkil 3andna. 3afak 3awed jerreb."
	default:
		return "Something went wrong on our side. Please try again."
	}
}

func whichCategoryMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "ما نوع البلاغ الذي تريد إنشاءه؟"
	case language.Darija:
		return "chno no3 lblagh li bghiti dir?"
	default:
		return "What kind of report would you like to create?"
	}
}

func loginRequiredMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "تحتاج إلى تسجيل الدخول لمتابعة بلاغاتك."
	case language.Darija:
		return "khassek tconnecta bach tchouf lblaghat dyalek."
	default:
		return "You need to be signed in to track your reports."
	}
}

func noReportsMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "ليس لديك أي بلاغ بعد."
	case language.Darija:
		return "mazal ma 3andek hta blagh."
	default:
		return "You don't have any reports yet."
	}
}

func reportSavedMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "اكتمل البلاغ. راجع الملخص ثم أكده من الشاشة الموالية."
	case language.Darija:
		return "kmel lblagh. chouf l mulakhas o akkdo men safha jaya."
	default:
		return "Your report is complete. Review the summary and confirm it on the next screen."
	}
}

func searchRefineMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "يمكنك إضافة تفاصيل لتدقيق البحث، أو كتابة طلب جديد."
	case language.Darija:
		return "t9der tzid tafasil bach ndekk9o lba7t, wla tkteb talab jdid."
	default:
		return "You can add details to narrow the search, or just type a new request."
	}
}

func searchPromptMessage(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "ما الذي تبحث عنه؟ اذكر الشيء والمدينة إن أمكن."
	case language.Darija:
		return "3la chno ka t9elleb? gol lia chno w fin ila 3rafti."
	default:
		return "What are you looking for? Mention the item and the city if you can."
	}
}

func skipLabel(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "تخطي"
	case language.Darija:
		return "fout"
	default:
		return "Skip"
	}
}

func doneLabel(lang language.Language) string {
	switch lang {
	case language.Arabic:
		return "إنهاء"
	case language.Darija:
		return "salit"
	default:
		return "Done"
	}
}

// menuQuickReplies is the idle-state main menu.
func menuQuickReplies(lang language.Language) []QuickReply {
	switch lang {
	case language.Arabic:
		return []QuickReply{
			{Text: "إنشاء بلاغ", Action: ActionCreateReport},
			{Text: "بحث في البلاغات", Action: ActionSearch},
			{Text: "بلاغاتي", Action: ActionCheckStatus},
		}
	case language.Darija:
		return []QuickReply{
			{Text: "dir blagh", Action: ActionCreateReport},
			{Text: "9elleb f lblaghat", Action: ActionSearch},
			{Text: "lblaghat dyali", Action: ActionCheckStatus},
		}
	default:
		return []QuickReply{
			{Text: "Create a report", Action: ActionCreateReport},
			{Text: "Search reports", Action: ActionSearch},
			{Text: "My reports", Action: ActionCheckStatus},
		}
	}
}

// categoryQuickReplies offers one button per report category.
func categoryQuickReplies(lang language.Language) []QuickReply {
	labels := map[lostfound.ReportType]map[language.Language]string{
		lostfound.TypePerson:      {language.English: "Person", language.Arabic: "شخص", language.Darija: "chakhs"},
		lostfound.TypePet:         {language.English: "Pet", language.Arabic: "حيوان أليف", language.Darija: "7ayawan"},
		lostfound.TypeDocument:    {language.English: "Document", language.Arabic: "وثيقة", language.Darija: "wra9"},
		lostfound.TypeElectronics: {language.English: "Electronics", language.Arabic: "إلكترونيات", language.Darija: "electronique"},
		lostfound.TypeVehicle:     {language.English: "Vehicle", language.Arabic: "مركبة", language.Darija: "tomobil"},
		lostfound.TypeOther:       {language.English: "Other", language.Arabic: "آخر", language.Darija: "haja khra"},
	}

	var out []QuickReply
	for _, t := range lostfound.AllTypes() {
		label, ok := labels[t][lang]
		if !ok {
			label = labels[t][language.English]
		}
		out = append(out, QuickReply{Text: label, Action: ActionCreateReport, Data: string(t)})
	}
	return out
}
