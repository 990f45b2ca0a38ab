package gazetteer

import (
	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

// categoryNouns maps nouns in all three languages to a report type.
// Arabic entries are bare (unprefixed) forms; the lookup lowercases but
// does not stem, so common prefixed variants are listed explicitly.
var categoryNouns = map[string]lostfound.ReportType{
	// person
	"person": lostfound.TypePerson, "people": lostfound.TypePerson,
	"man": lostfound.TypePerson, "woman": lostfound.TypePerson,
	"child": lostfound.TypePerson, "boy": lostfound.TypePerson,
	"girl": lostfound.TypePerson, "brother": lostfound.TypePerson,
	"sister": lostfound.TypePerson, "father": lostfound.TypePerson,
	"mother": lostfound.TypePerson,
	"شخص":    lostfound.TypePerson, "رجل": lostfound.TypePerson,
	"امرأة": lostfound.TypePerson, "طفل": lostfound.TypePerson,
	"طفلة": lostfound.TypePerson, "أخي": lostfound.TypePerson,
	"أختي": lostfound.TypePerson,
	"rajel": lostfound.TypePerson, "mra": lostfound.TypePerson,
	"wld": lostfound.TypePerson, "weld": lostfound.TypePerson,
	"bnt": lostfound.TypePerson, "bent": lostfound.TypePerson,
	"khouya": lostfound.TypePerson, "khti": lostfound.TypePerson,

	// pet
	"pet": lostfound.TypePet, "dog": lostfound.TypePet,
	"cat": lostfound.TypePet, "bird": lostfound.TypePet,
	"animal": lostfound.TypePet, "puppy": lostfound.TypePet,
	"kitten": lostfound.TypePet,
	"حيوان":  lostfound.TypePet, "كلب": lostfound.TypePet,
	"قط": lostfound.TypePet, "قطة": lostfound.TypePet,
	"عصفور": lostfound.TypePet,
	"kelb":  lostfound.TypePet, "kelba": lostfound.TypePet,
	"9ett": lostfound.TypePet, "9etta": lostfound.TypePet,
	"hayawan": lostfound.TypePet,

	// document
	"document": lostfound.TypeDocument, "documents": lostfound.TypeDocument,
	"passport": lostfound.TypeDocument, "wallet": lostfound.TypeDocument,
	"card": lostfound.TypeDocument, "papers": lostfound.TypeDocument,
	"id": lostfound.TypeDocument, "license": lostfound.TypeDocument,
	"وثيقة": lostfound.TypeDocument, "وثائق": lostfound.TypeDocument,
	"جواز": lostfound.TypeDocument, "بطاقة": lostfound.TypeDocument,
	"محفظة": lostfound.TypeDocument, "أوراق": lostfound.TypeDocument,
	"wra9": lostfound.TypeDocument, "bita9a": lostfound.TypeDocument,
	"passeport": lostfound.TypeDocument, "bezwela": lostfound.TypeDocument,

	// electronics
	"phone": lostfound.TypeElectronics, "laptop": lostfound.TypeElectronics,
	"tablet": lostfound.TypeElectronics, "camera": lostfound.TypeElectronics,
	"electronics": lostfound.TypeElectronics, "device": lostfound.TypeElectronics,
	"smartphone": lostfound.TypeElectronics, "iphone": lostfound.TypeElectronics,
	"هاتف": lostfound.TypeElectronics, "حاسوب": lostfound.TypeElectronics,
	"جهاز": lostfound.TypeElectronics, "كاميرا": lostfound.TypeElectronics,
	"telephone": lostfound.TypeElectronics, "tilifoun": lostfound.TypeElectronics,
	"portable": lostfound.TypeElectronics, "pc": lostfound.TypeElectronics,

	// vehicle
	"car": lostfound.TypeVehicle, "vehicle": lostfound.TypeVehicle,
	"motorcycle": lostfound.TypeVehicle, "bike": lostfound.TypeVehicle,
	"bicycle": lostfound.TypeVehicle, "scooter": lostfound.TypeVehicle,
	"سيارة": lostfound.TypeVehicle, "دراجة": lostfound.TypeVehicle,
	"tomobil": lostfound.TypeVehicle, "tonobil": lostfound.TypeVehicle,
	"moto": lostfound.TypeVehicle, "bechklita": lostfound.TypeVehicle,
}

type city struct {
	canonical string
	aliases   []string
}

// cities is the known Moroccan city gazetteer. Aliases cover French
// and Arabic spellings; matching is substring-based on lowered text.
var cities = []city{
	{"casablanca", []string{"casablanca", "casa", "الدار البيضاء", "كازا"}},
	{"rabat", []string{"rabat", "الرباط"}},
	{"fes", []string{"fes", "fez", "fès", "فاس"}},
	{"marrakech", []string{"marrakech", "marrakesh", "مراكش"}},
	{"tangier", []string{"tangier", "tanger", "tanja", "طنجة"}},
	{"agadir", []string{"agadir", "أكادير", "اكادير"}},
	{"meknes", []string{"meknes", "meknès", "مكناس"}},
	{"oujda", []string{"oujda", "وجدة"}},
	{"kenitra", []string{"kenitra", "القنيطرة"}},
	{"tetouan", []string{"tetouan", "tétouan", "تطوان"}},
	{"sale", []string{"salé", "سلا"}},
	{"safi", []string{"safi", "آسفي", "اسفي"}},
	{"mohammedia", []string{"mohammedia", "المحمدية"}},
	{"el jadida", []string{"el jadida", "eljadida", "الجديدة"}},
	{"beni mellal", []string{"beni mellal", "بني ملال"}},
	{"nador", []string{"nador", "الناظور"}},
	{"khouribga", []string{"khouribga", "خريبكة"}},
	{"essaouira", []string{"essaouira", "الصويرة"}},
	{"laayoune", []string{"laayoune", "العيون"}},
	{"ouarzazate", []string{"ouarzazate", "ورزازات"}},
	{"errachidia", []string{"errachidia", "الرشيدية"}},
	{"taza", []string{"taza", "تازة"}},
	{"settat", []string{"settat", "سطات"}},
	{"larache", []string{"larache", "العرائش"}},
	{"khemisset", []string{"khemisset", "الخميسات"}},
}

// stopwordLang tags each stopword with the language it belongs to.
// The membership check itself is language-blind; short messages mix
// languages freely.
var stopwordLang = map[string]language.Language{
	// English
	"i": language.English, "a": language.English, "an": language.English,
	"the": language.English, "my": language.English, "in": language.English,
	"at": language.English, "on": language.English, "of": language.English,
	"to": language.English, "is": language.English, "was": language.English,
	"for": language.English, "and": language.English, "have": language.English,
	"has": language.English, "it": language.English, "me": language.English,
	"please": language.English, "help": language.English,
	"lost": language.English, "missing": language.English,
	"found": language.English, "find": language.English,
	"search": language.English, "looking": language.English,
	"look": language.English, "seen": language.English,
	"any": language.English, "near": language.English,

	// Arabic
	"في": language.Arabic, "من": language.Arabic, "على": language.Arabic,
	"أنا": language.Arabic, "هل": language.Arabic, "لقد": language.Arabic,
	"عن": language.Arabic, "مع": language.Arabic, "هذا": language.Arabic,
	"هذه": language.Arabic, "يا": language.Arabic,
	"ضاع": language.Arabic, "ضايع": language.Arabic, "فقدت": language.Arabic,
	"مفقود": language.Arabic, "لقيت": language.Arabic, "وجدت": language.Arabic,
	"ابحث": language.Arabic, "بحث": language.Arabic, "شفت": language.Arabic,

	// Darija
	"dyal": language.Darija, "dyali": language.Darija, "li": language.Darija,
	"lia": language.Darija, "liya": language.Darija,
	"f": language.Darija, "fi": language.Darija, "wa": language.Darija,
	"o": language.Darija, "ou": language.Darija, "3la": language.Darija,
	"m3a": language.Darija, "ana": language.Darija, "chi": language.Darija,
	"wach": language.Darija, "bghit": language.Darija,
	"khassni": language.Darija, "khasni": language.Darija,
	"tlef": language.Darija, "tleft": language.Darija,
	"l9it": language.Darija, "lqit": language.Darija,
	"chft": language.Darija, "cheft": language.Darija,
	"chefti": language.Darija, "9elleb": language.Darija,
	"qelleb": language.Darija, "fin": language.Darija,
	"kayn": language.Darija, "3afak": language.Darija,
}

var stopwords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwordLang))
	for tok := range stopwordLang {
		m[tok] = struct{}{}
	}
	return m
}()

// cancellationPhrases interrupt any active flow. Single words match
// any token of the message; multi-word phrases match anywhere.
var cancellationPhrases = []string{
	// English
	"cancel", "stop", "quit", "exit", "restart",
	"never mind", "nevermind", "start over", "forget it",
	// Arabic
	"إلغاء", "الغاء", "توقف", "ألغ",
	"ابدأ من جديد", "انس الأمر",
	// Darija
	"wa9ef", "hbess", "habss", "salina", "baraka",
	"bghit nwa9ef", "khassni nbda men jdid", "khasni nbda men jdid",
	"nbda men jdid", "ansa had chi",
}

var createCueTokens = map[string]struct{}{
	"lost": {}, "missing": {}, "report": {},
	"ضاع": {}, "ضايع": {}, "ضاعت": {}, "فقدت": {}, "مفقود": {}, "مفقودة": {},
	"لقيت": {}, "وجدت": {}, "بلاغ": {},
	"tlef": {}, "tleft": {}, "tlefti": {}, "twdder": {}, "wdder": {},
	"l9it": {}, "lqit": {}, "wjedt": {},
}

var createCuePhrases = []string{
	"i found", "found a", "found an", "i want to report",
	"mcha liya", "mchat liya", "dha3 liya", "dhe3 liya",
}

var searchCueTokens = map[string]struct{}{
	"find": {}, "search": {}, "seen": {},
	"ابحث": {}, "بحث": {}, "شفت": {}, "أين": {},
	"9elleb": {}, "qelleb": {}, "chft": {}, "cheft": {}, "chefti": {}, "fin": {},
}

var searchCuePhrases = []string{
	"look for", "looking for", "is there any", "anyone seen",
	"هل رأى", "هل شاهد",
	"wach kayn", "wach chefti", "wach chfto",
}

var statusCueTokens = map[string]struct{}{
	"status": {}, "بلاغاتي": {}, "blagati": {}, "blaghati": {},
}

var statusCuePhrases = []string{
	"my reports", "my report", "track my",
	"حالة بلاغي", "أين وصل بلاغي",
	"fin wslo", "fin wsel", "ach w9e3 l blag",
}

var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "good morning": {},
	"مرحبا": {}, "السلام": {}, "سلام": {}, "السلام عليكم": {}, "أهلا": {},
	"salam": {}, "salut": {}, "ahlan": {}, "salam 3likom": {}, "labas": {},
}
