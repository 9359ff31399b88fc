package refdata

// verbalLanguages is the spoken language directory, keyed by the codes used
// on hearing options. Dialect entries carry their own key so a dialect
// selection resolves to the combined reference.
var verbalLanguages = map[string]Language{
	"arabic":          {Reference: "ara", Name: "Arabic"},
	"iraqi":           {Reference: "ara", DialectReference: "ara-2", Name: "Arabic", DialectName: "Iraqi"},
	"french":          {Reference: "fre", Name: "French"},
	"spanish":         {Reference: "spa", Name: "Spanish"},
	"polish":          {Reference: "pol", Name: "Polish"},
	"urdu":            {Reference: "urd", Name: "Urdu"},
	"punjabi":         {Reference: "pan", Name: "Punjabi"},
	"welsh":           {Reference: "wel", Name: "Welsh"},
	"portuguese":      {Reference: "por", Name: "Portuguese"},
	"brazilian":       {Reference: "por", DialectReference: "por-1", Name: "Portuguese", DialectName: "Brazilian"},
	"bengali":         {Reference: "ben", Name: "Bengali"},
	"sylheti":         {Reference: "ben", DialectReference: "ben-1", Name: "Bengali", DialectName: "Sylheti"},
	"mandarin":        {Reference: "cmn", Name: "Mandarin"},
	"cantonese":       {Reference: "yue", Name: "Cantonese"},
	"farsi":           {Reference: "per", Name: "Farsi"},
	"kurdish sorani":  {Reference: "kur", DialectReference: "kur-1", Name: "Kurdish", DialectName: "Sorani"},
	"kurdish kurmanji": {Reference: "kur", DialectReference: "kur-2", Name: "Kurdish", DialectName: "Kurmanji"},
}

// signLanguages is the sign language directory, keyed by the sign language
// type recorded on hearing options
var signLanguages = map[string]Language{
	"British Sign Language (BSL)": {Reference: "bfi", Name: "British Sign Language (BSL)"},
	"International Sign (IS)":     {Reference: "ils", Name: "International Sign (IS)"},
	"Makaton":                     {Reference: "sign-mkn", Name: "Makaton"},
	"Lipspeaker":                  {Reference: "sign-lps", Name: "Lipspeaker"},
	"Deafblind manual alphabet":   {Reference: "sign-dbm", Name: "Deafblind manual alphabet"},
	"Hands on signing":            {Reference: "sign-hos", Name: "Hands on signing"},
	"Notetaker":                   {Reference: "sign-ntr", Name: "Notetaker"},
	"Speech to text reporter":     {Reference: "sign-str", Name: "Speech to text reporter"},
}
