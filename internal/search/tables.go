package search

// Hand-authored substitution tables. Only the three directions below exist;
// the matcher is intentionally asymmetric and never derives reverse tables.
// Two-rune keys are digraphs and are always tried before single runes.

var enToHy = map[string]string{
	"ch": "չ",
	"sh": "շ",
	"zh": "ժ",
	"ts": "ց",
	"dz": "ձ",
	"gh": "ղ",
	"kh": "խ",
	"th": "թ",
	"ou": "ու",

	"a": "ա",
	"b": "բ",
	"c": "ց",
	"d": "դ",
	"e": "ե",
	"f": "ֆ",
	"g": "գ",
	"h": "հ",
	"i": "ի",
	"j": "ջ",
	"k": "կ",
	"l": "լ",
	"m": "մ",
	"n": "ն",
	"o": "ո",
	"p": "պ",
	"q": "ք",
	"r": "ր",
	"s": "ս",
	"t": "տ",
	"u": "ու",
	"v": "վ",
	"w": "վ",
	"x": "խ",
	"y": "յ",
	"z": "զ",
}

var enToRu = map[string]string{
	"ch": "ч",
	"sh": "ш",
	"zh": "ж",
	"ts": "ц",
	"ya": "я",
	"yu": "ю",
	"yo": "ё",
	"kh": "х",

	"a": "а",
	"b": "б",
	"c": "ц",
	"d": "д",
	"e": "е",
	"f": "ф",
	"g": "г",
	"h": "х",
	"i": "и",
	"j": "й",
	"k": "к",
	"l": "л",
	"m": "м",
	"n": "н",
	"o": "о",
	"p": "п",
	"q": "к",
	"r": "р",
	"s": "с",
	"t": "т",
	"u": "у",
	"v": "в",
	"w": "в",
	"y": "ы",
	"z": "з",
}

var ruToHy = map[string]string{
	"ю": "յու",
	"я": "յա",
	"ё": "յո",

	"а": "ա",
	"б": "բ",
	"в": "վ",
	"г": "գ",
	"д": "դ",
	"е": "ե",
	"ж": "ժ",
	"з": "զ",
	"и": "ի",
	"й": "յ",
	"к": "կ",
	"л": "լ",
	"м": "մ",
	"н": "ն",
	"о": "ո",
	"п": "պ",
	"р": "ր",
	"с": "ս",
	"т": "տ",
	"у": "ու",
	"ф": "ֆ",
	"х": "խ",
	"ц": "ց",
	"ч": "չ",
	"ш": "շ",
	"щ": "շ",
	"ы": "ը",
	"э": "է",
	"ь": "",
	"ъ": "",
}
