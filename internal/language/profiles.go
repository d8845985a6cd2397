package language

// Built-in vocabulary tables. English is the mandatory fallback profile;
// the others follow the same shape. Every profile defines at least the
// today, tomorrow, at, am and pm slots.

func englishProfile() *Profile {
	return &Profile{
		Code: "en",
		Weekdays: [7]string{
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
		Months: [12]string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		Today:        WordSet{"today"},
		Tomorrow:     WordSet{"tomorrow"},
		In:           WordSet{"in"},
		DayUnits:     WordSet{"day", "days"},
		WeekUnits:    WordSet{"week", "weeks"},
		Next:         WordSet{"next"},
		On:           WordSet{"on"},
		At:           WordSet{"at"},
		AM:           WordSet{"am"},
		PM:           WordSet{"pm"},
		Noon:         WordSet{"noon", "midday"},
		Midnight:     WordSet{"midnight"},
		HourWords:    WordSet{"oclock", "o'clock", "hour", "hours"},
		Fillers:      WordSet{"morning", "afternoon", "evening", "night"},
		Prepositions: WordSet{"the"},
		Offsets: []PhraseOffset{
			{Phrase: "day after tomorrow", Days: 2},
		},
		Numbers: map[string]int{
			"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
			"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
		},
	}
}

func dutchProfile() *Profile {
	return &Profile{
		Code: "nl",
		Weekdays: [7]string{
			"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag",
		},
		Months: [12]string{
			"januari", "februari", "maart", "april", "mei", "juni",
			"juli", "augustus", "september", "oktober", "november", "december",
		},
		Today:        WordSet{"vandaag"},
		Tomorrow:     WordSet{"morgen"},
		In:           WordSet{"over", "in"},
		DayUnits:     WordSet{"dag", "dagen"},
		WeekUnits:    WordSet{"week", "weken"},
		Next:         WordSet{"volgende", "aanstaande"},
		On:           WordSet{"op"},
		At:           WordSet{"om"},
		AM:           WordSet{"am"},
		PM:           WordSet{"pm"},
		Noon:         WordSet{"middag"},
		Midnight:     WordSet{"middernacht"},
		HourWords:    WordSet{"uur"},
		Fillers:      WordSet{"ochtends", "middags", "avonds", "nachts"},
		Prepositions: WordSet{"de", "het"},
		Offsets: []PhraseOffset{
			{Phrase: "overmorgen", Days: 2},
		},
		Numbers: map[string]int{
			"een": 1, "twee": 2, "drie": 3, "vier": 4, "vijf": 5,
			"zes": 6, "zeven": 7, "acht": 8, "negen": 9, "tien": 10,
		},
	}
}

func germanProfile() *Profile {
	return &Profile{
		Code: "de",
		Weekdays: [7]string{
			"montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag", "sonntag",
		},
		Months: [12]string{
			"januar", "februar", "märz", "april", "mai", "juni",
			"juli", "august", "september", "oktober", "november", "dezember",
		},
		Today:        WordSet{"heute"},
		Tomorrow:     WordSet{"morgen"},
		In:           WordSet{"in"},
		DayUnits:     WordSet{"tag", "tage", "tagen"},
		WeekUnits:    WordSet{"woche", "wochen"},
		Next:         WordSet{"nächsten", "nächste", "naechsten", "naechste"},
		On:           WordSet{"am"},
		At:           WordSet{"um"},
		AM:           WordSet{"am"},
		PM:           WordSet{"pm"},
		Noon:         WordSet{"mittag"},
		Midnight:     WordSet{"mitternacht"},
		HourWords:    WordSet{"uhr"},
		Fillers:      WordSet{"morgens", "nachmittags", "abends", "nachts"},
		Prepositions: WordSet{"der", "die", "das"},
		Offsets: []PhraseOffset{
			{Phrase: "übermorgen", Days: 2},
			{Phrase: "uebermorgen", Days: 2},
		},
		Numbers: map[string]int{
			"ein": 1, "eins": 1, "einem": 1, "einer": 1, "zwei": 2, "drei": 3,
			"vier": 4, "fünf": 5, "fuenf": 5, "sechs": 6, "sieben": 7,
			"acht": 8, "neun": 9, "zehn": 10,
		},
	}
}

func frenchProfile() *Profile {
	return &Profile{
		Code: "fr",
		Weekdays: [7]string{
			"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
		},
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		Today:        WordSet{"aujourd'hui", "aujourdhui"},
		Tomorrow:     WordSet{"demain"},
		In:           WordSet{"dans"},
		DayUnits:     WordSet{"jour", "jours"},
		WeekUnits:    WordSet{"semaine", "semaines"},
		Next:         WordSet{"prochain", "prochaine"},
		On:           WordSet{"le"},
		At:           WordSet{"à", "a"},
		AM:           WordSet{"am"},
		PM:           WordSet{"pm"},
		Noon:         WordSet{"midi"},
		Midnight:     WordSet{"minuit"},
		HourWords:    WordSet{"heure", "heures", "h"},
		Fillers:      WordSet{"matin", "soir", "nuit"},
		Prepositions: WordSet{"la", "les", "du"},
		Offsets: []PhraseOffset{
			{Phrase: "après-demain", Days: 2},
			{Phrase: "apres-demain", Days: 2},
		},
		Numbers: map[string]int{
			"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5,
			"six": 6, "sept": 7, "huit": 8, "neuf": 9, "dix": 10,
		},
	}
}

func spanishProfile() *Profile {
	return &Profile{
		Code: "es",
		Weekdays: [7]string{
			"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo",
		},
		Months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		Today:        WordSet{"hoy"},
		Tomorrow:     WordSet{"mañana", "manana"},
		In:           WordSet{"en"},
		DayUnits:     WordSet{"día", "días", "dia", "dias"},
		WeekUnits:    WordSet{"semana", "semanas"},
		Next:         WordSet{"próximo", "próxima", "proximo", "proxima"},
		On:           WordSet{"el"},
		At:           WordSet{"a las", "a la", "a"},
		AM:           WordSet{"am"},
		PM:           WordSet{"pm"},
		Noon:         WordSet{"mediodía", "mediodia"},
		Midnight:     WordSet{"medianoche"},
		HourWords:    WordSet{"hora", "horas"},
		Fillers:      WordSet{"mañana", "manana", "tarde", "noche"},
		Prepositions: WordSet{"de", "del", "la", "las"},
		Offsets: []PhraseOffset{
			{Phrase: "pasado mañana", Days: 2},
			{Phrase: "pasado manana", Days: 2},
		},
		Numbers: map[string]int{
			"uno": 1, "una": 1, "dos": 2, "tres": 3, "cuatro": 4, "cinco": 5,
			"seis": 6, "siete": 7, "ocho": 8, "nueve": 9, "diez": 10,
		},
	}
}
