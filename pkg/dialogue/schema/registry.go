// Package schema owns the static question sequences the report
// dialogue walks through, one ordered list per category. Identifying
// fields come first and logistics last, so an abandoned session still
// leaves a usable partial draft.
package schema

import (
	"errors"

	"github.com/maatalaayoub/L9ani-sub001/pkg/lostfound"
	"github.com/maatalaayoub/L9ani-sub001/pkg/nlu/language"
)

var ErrUnknownReportType = errors.New("unknown report type")

// Get returns the ordered slot list for a category. The returned slice
// is a copy; callers may embed it in a session without aliasing the
// registry.
func Get(reportType lostfound.ReportType) ([]SlotDefinition, error) {
	slots, ok := registry[reportType]
	if !ok {
		return nil, ErrUnknownReportType
	}
	out := make([]SlotDefinition, len(slots))
	copy(out, slots)
	return out, nil
}

// RequiredCount returns how many slots in a schema are required.
func RequiredCount(slots []SlotDefinition) int {
	n := 0
	for _, s := range slots {
		if s.Required {
			n++
		}
	}
	return n
}

var registry = map[lostfound.ReportType][]SlotDefinition{
	lostfound.TypePerson: {
		textSlot("firstName", SectionIdentity, true,
			l("What is the person's first name?", "ما هو الاسم الشخصي؟", "chno smiyt chakhs?"),
			l("First name", "الاسم الشخصي", "smiya")),
		textSlot("lastName", SectionIdentity, true,
			l("What is the person's last name?", "ما هو الاسم العائلي؟", "chno knya dyalo?"),
			l("Last name", "الاسم العائلي", "knya")),
		numberSlot("age", SectionDescription, false,
			l("How old are they? (you can skip this)", "كم عمره؟ (يمكنك التخطي)", "ch7al f 3mro? (t9der tfout had su'al)"),
			l("Age", "العمر", "l3mer")),
		enumSlot("gender", SectionDescription, false, []string{"male", "female"},
			l("What is their gender? (male / female)", "ما هو الجنس؟ (ذكر / أنثى)", "rajel wla mra? (male / female)"),
			l("Gender", "الجنس", "jins")),
		textSlot("description", SectionDescription, false,
			l("Describe them: clothing, height, distinguishing marks. (you can skip this)",
				"صف الشخص: الملابس، الطول، علامات مميزة. (يمكنك التخطي)",
				"wsef lina chakhs: lbas, toul, 3alamat. (t9der tfout)"),
			l("Description", "الوصف", "lwasf")),
	},
	lostfound.TypePet: {
		textSlot("petName", SectionIdentity, true,
			l("What is the pet's name?", "ما اسم الحيوان؟", "chno smiyt l7ayawan?"),
			l("Pet name", "اسم الحيوان", "smiyt l7ayawan")),
		enumSlot("petType", SectionIdentity, true, []string{"dog", "cat", "bird", "other"},
			l("What kind of pet is it? (dog / cat / bird / other)",
				"ما نوع الحيوان؟ (كلب / قط / عصفور / آخر)",
				"chno no3 dyalo? (dog / cat / bird / other)"),
			l("Pet type", "نوع الحيوان", "no3")),
		textSlot("breed", SectionDescription, false,
			l("What breed is it? (you can skip this)", "ما هي السلالة؟ (يمكنك التخطي)", "chno sulala dyalo? (t9der tfout)"),
			l("Breed", "السلالة", "sulala")),
		enumSlot("size", SectionDescription, false, []string{"small", "medium", "large"},
			l("What size is it? (small / medium / large)",
				"ما حجمه؟ (صغير / متوسط / كبير)",
				"ch7al kbir? (small / medium / large)"),
			l("Size", "الحجم", "l7ajm")),
		textSlot("color", SectionDescription, false,
			l("What color is it? (you can skip this)", "ما لونه؟ (يمكنك التخطي)", "chno lon dyalo? (t9der tfout)"),
			l("Color", "اللون", "loun")),
	},
	lostfound.TypeDocument: {
		enumSlot("documentType", SectionIdentity, true,
			[]string{"passport", "id_card", "driver_license", "wallet", "other"},
			l("What type of document? (passport / id_card / driver_license / wallet / other)",
				"ما نوع الوثيقة؟ (جواز / بطاقة / رخصة / محفظة / أخرى)",
				"chno no3 lwra9? (passport / id_card / driver_license / wallet / other)"),
			l("Document type", "نوع الوثيقة", "no3 lwra9")),
		textSlot("ownerName", SectionIdentity, false,
			l("What name is on the document? (you can skip this)",
				"ما الاسم المكتوب على الوثيقة؟ (يمكنك التخطي)",
				"chno smiya li mketba f lwra9? (t9der tfout)"),
			l("Name on document", "الاسم على الوثيقة", "smiya f lwra9")),
		textSlot("documentNumber", SectionDescription, false,
			l("Do you know the document number? (you can skip this)",
				"هل تعرف رقم الوثيقة؟ (يمكنك التخطي)",
				"wach 3arf ra9m lwra9? (t9der tfout)"),
			l("Document number", "رقم الوثيقة", "ra9m")),
	},
	lostfound.TypeElectronics: {
		enumSlot("deviceType", SectionIdentity, true,
			[]string{"phone", "laptop", "tablet", "camera", "other"},
			l("What kind of device? (phone / laptop / tablet / camera / other)",
				"ما نوع الجهاز؟ (هاتف / حاسوب / لوحي / كاميرا / آخر)",
				"chno no3 l jihaz? (phone / laptop / tablet / camera / other)"),
			l("Device type", "نوع الجهاز", "no3 l jihaz")),
		textSlot("brand", SectionIdentity, true,
			l("What brand is it?", "ما هي العلامة التجارية؟", "chno lmarka dyalo?"),
			l("Brand", "العلامة التجارية", "lmarka")),
		textSlot("model", SectionDescription, false,
			l("Which model? (you can skip this)", "ما هو الطراز؟ (يمكنك التخطي)", "chno lmodel? (t9der tfout)"),
			l("Model", "الطراز", "lmodel")),
		textSlot("color", SectionDescription, false,
			l("What color is it? (you can skip this)", "ما لونه؟ (يمكنك التخطي)", "chno loun dyalo? (t9der tfout)"),
			l("Color", "اللون", "loun")),
	},
	lostfound.TypeVehicle: {
		enumSlot("vehicleType", SectionIdentity, true,
			[]string{"car", "motorcycle", "bicycle", "scooter", "other"},
			l("What kind of vehicle? (car / motorcycle / bicycle / scooter / other)",
				"ما نوع المركبة؟ (سيارة / دراجة نارية / دراجة / سكوتر / أخرى)",
				"chno no3 dyal tomobil? (car / motorcycle / bicycle / scooter / other)"),
			l("Vehicle type", "نوع المركبة", "no3")),
		textSlot("brand", SectionIdentity, true,
			l("What brand is it?", "ما هي العلامة التجارية؟", "chno lmarka?"),
			l("Brand", "العلامة التجارية", "lmarka")),
		textSlot("model", SectionDescription, false,
			l("Which model? (you can skip this)", "ما هو الطراز؟ (يمكنك التخطي)", "chno lmodel? (t9der tfout)"),
			l("Model", "الطراز", "lmodel")),
		textSlot("color", SectionDescription, false,
			l("What color is it? (you can skip this)", "ما لونها؟ (يمكنك التخطي)", "chno loun? (t9der tfout)"),
			l("Color", "اللون", "loun")),
		textSlot("plateNumber", SectionDescription, false,
			l("What is the plate number? (you can skip this)",
				"ما رقم اللوحة؟ (يمكنك التخطي)",
				"chno ra9m la plaque? (t9der tfout)"),
			l("Plate number", "رقم اللوحة", "ra9m la plaque")),
	},
	lostfound.TypeOther: {
		textSlot("itemName", SectionIdentity, true,
			l("What did you lose or find?", "ما الذي فقدته أو وجدته؟", "chno li tlef lik wla l9iti?"),
			l("Item", "الشيء", "l7aja")),
		textSlot("description", SectionDescription, false,
			l("Describe it briefly. (you can skip this)", "صفه باختصار. (يمكنك التخطي)", "wsef lina b khtisar. (t9der tfout)"),
			l("Description", "الوصف", "lwasf")),
	},
}

// universalTail is appended to every category: logistics last.
var universalTail = []SlotDefinition{
	textSlot("city", SectionLocation, true,
		l("Which city?", "في أي مدينة؟", "f ina mdina?"),
		l("City", "المدينة", "lmdina")),
	textSlot("locationDescription", SectionLocation, false,
		l("Where exactly was it last seen? (you can skip this)",
			"أين شوهد آخر مرة بالضبط؟ (يمكنك التخطي)",
			"fin bidabt akhir mera? (t9der tfout)"),
		l("Last known location", "آخر مكان", "akhir blasa")),
	textSlot("additionalInfo", SectionLocation, false,
		l("Anything else we should know? (you can skip this)",
			"هل من معلومات إضافية؟ (يمكنك التخطي)",
			"wach kayn chi haja khra? (t9der tfout)"),
		l("Additional info", "معلومات إضافية", "m3lomat zayda")),
}

func init() {
	for t := range registry {
		registry[t] = append(registry[t], universalTail...)
	}
}

// l builds the per-language text table for a prompt, hint or label.
func l(en, ar, darija string) map[language.Language]string {
	return map[language.Language]string{
		language.English: en,
		language.Arabic:  ar,
		language.Darija:  darija,
	}
}

func textSlot(key string, section Section, required bool, prompts, labels map[language.Language]string) SlotDefinition {
	return SlotDefinition{
		Key:      key,
		Kind:     KindText,
		Section:  section,
		Required: required,
		Prompts:  prompts,
		Labels:   labels,
		Hints: l("This field cannot be empty.",
			"لا يمكن ترك هذا الحقل فارغا.",
			"ma ymkench tkhelli had l khana khawya."),
	}
}

func numberSlot(key string, section Section, required bool, prompts, labels map[language.Language]string) SlotDefinition {
	return SlotDefinition{
		Key:      key,
		Kind:     KindNumber,
		Section:  section,
		Required: required,
		Prompts:  prompts,
		Labels:   labels,
		Hints: l("Please answer with a number.",
			"من فضلك أجب برقم.",
			"3afak jaweb b ra9m."),
	}
}

func enumSlot(key string, section Section, required bool, values []string, prompts, labels map[language.Language]string) SlotDefinition {
	return SlotDefinition{
		Key:          key,
		Kind:         KindEnum,
		Section:      section,
		Required:     required,
		Enum:         values,
		QuickReplies: values,
		Prompts:      prompts,
		Labels:       labels,
		Hints: l("Please pick one of the listed options.",
			"من فضلك اختر أحد الخيارات المذكورة.",
			"3afak khtar wahed men l khtiyarat."),
	}
}
