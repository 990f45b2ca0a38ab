package language

// darijaRatioThreshold is the share of lexicon hits needed to call a
// text darija when no strong token is present.
const darijaRatioThreshold = 0.2

// darijaStrongTokens are words that essentially never appear in
// English or French text. One hit is enough to classify.
var darijaStrongTokens = map[string]struct{}{
	"wach":    {},
	"wash":    {},
	"bghit":   {},
	"bghyt":   {},
	"khassni": {},
	"khasni":  {},
	"3afak":   {},
	"3fak":    {},
	"chno":    {},
	"chnou":   {},
	"achno":   {},
	"kayn":    {},
	"kayna":   {},
	"tlef":    {},
	"tleft":   {},
	"tlefti":  {},
	"twdder":  {},
	"wdder":   {},
	"l9it":    {},
	"lqit":    {},
	"l9ito":   {},
	"chft":    {},
	"cheft":   {},
	"chefti":  {},
	"9elleb":  {},
	"qelleb":  {},
	"9alleb":  {},
	"smiti":   {},
	"smiytu":  {},
	"dyali":   {},
	"dyalo":   {},
	"3ndi":    {},
	"3andi":   {},
	"3endek":  {},
	"m3aya":   {},
	"bzaf":    {},
	"bezzaf":  {},
	"daba":    {},
	"ghadi":   {},
	"blagati": {},
	"hadchi":  {},
	"labas":   {},
	"lqani":   {},
	"l9ani":   {},
}

// darijaTokens is the wider lexicon used for the ratio check. It
// includes the strong tokens plus short particles that also occur in
// other languages, so a single hit here proves nothing.
var darijaTokens = map[string]struct{}{
	"salam": {}, "fin": {}, "fink": {}, "mcha": {}, "mchat": {},
	"dyal": {}, "hadi": {}, "hada": {}, "ana": {},
	"nta": {}, "ntya": {}, "howa": {}, "hya": {}, "7na": {},
	"rajel": {}, "mra": {}, "wld": {}, "weld": {}, "bnt": {},
	"bent": {}, "kelb": {}, "9ett": {}, "mezyan": {}, "zwin": {},
	"sghir": {}, "kbir": {}, "bach": {}, "wa9ila": {}, "yallah": {},
	"baraka": {}, "wahed": {}, "jdid": {}, "3la": {}, "f": {},
}

func init() {
	for tok := range darijaStrongTokens {
		darijaTokens[tok] = struct{}{}
	}
}
