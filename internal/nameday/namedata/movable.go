package namedata

import "github.com/bgcalendar/nameday-api/internal/nameday"

// MovableHolidays is the catalogue of feasts whose date is defined as a
// day offset from Orthodox Easter. Offset 0 is Easter Sunday itself.
var MovableHolidays = []nameday.MovableHoliday{
	{
		ID:           "todorovden",
		Holiday:      "Тодоровден (Конски Великден)",
		HolidayLatin: "Todorovden (Konski Velikden)",
		OffsetDays:   -43,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Тодор", Variants: []string{"Тодорка", "Тодорин", "Тошо", "Тотьо", "Тото", "Тода"}, Latin: []string{"Todor", "Todorka", "Todorin", "Tosho", "Totyo", "Toto", "Toda"}},
			{Name: "Теодор", Variants: []string{"Теодора", "Теди", "Теодоси", "Теодосий", "Теодосия"}, Latin: []string{"Teodor", "Teodora", "Tedi", "Teodosi", "Teodosiy", "Teodosiya"}},
			{Name: "Дора", Variants: []string{"Дорка", "Дориана", "Доротея", "Доротей"}, Latin: []string{"Dora", "Dorka", "Doriana", "Doroteya", "Dorotey"}},
			{Name: "Божидар", Variants: []string{"Божидара", "Божана", "Божан", "Божил", "Божко"}, Latin: []string{"Bozhidar", "Bozhidara", "Bozhana", "Bozhan", "Bozhil", "Bozhko"}},
			{Name: "Дарин", Variants: []string{"Дарина", "Дарко", "Дарка", "Дария", "Дариян", "Дарислав", "Дарислава"}, Latin: []string{"Darin", "Darina", "Darko", "Darka", "Dariya", "Dariyan", "Darislav", "Darislava"}},
		},
	},
	{
		ID:           "lazarovden",
		Holiday:      "Лазаровден",
		HolidayLatin: "Lazarovden",
		OffsetDays:   -8,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Лазар", Variants: []string{"Лазарка", "Лазарина", "Лазо"}, Latin: []string{"Lazar", "Lazarka", "Lazarina", "Lazo"}},
			{Name: "Лъчезар", Variants: []string{"Лъчезара"}, Latin: []string{"Lachezar", "Lachezara"}},
		},
	},
	{
		ID:           "tsvetnitsa",
		Holiday:      "Цветница (Връбница)",
		HolidayLatin: "Tsvetnitsa (Vrabnitsa)",
		OffsetDays:   -7,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Цветан", Variants: []string{"Цветана", "Цветанка", "Цвете", "Цветин", "Цветина", "Цветка", "Цвятко", "Цено"}, Latin: []string{"Tsvetan", "Tsvetana", "Tsvetanka", "Tsvete", "Tsvetin", "Tsvetina", "Tsvetka", "Tsvyatko", "Tseno"}},
			{Name: "Цветелин", Variants: []string{"Цветелина"}, Latin: []string{"Tsvetelin", "Tsvetelina"}},
			{Name: "Цветомир", Variants: []string{"Цветомира", "Цветомила", "Цветослав", "Цветослава", "Цветимир"}, Latin: []string{"Tsvetomir", "Tsvetomira", "Tsvetomila", "Tsvetoslav", "Tsvetoslava", "Tsvetimir"}},
			{Name: "Виолета", Variants: []string{"Виола"}, Latin: []string{"Violeta", "Viola"}},
			{Name: "Роза", Variants: []string{"Розалия", "Розалина", "Ружа"}, Latin: []string{"Roza", "Rozaliya", "Rozalina", "Ruzha"}},
			{Name: "Маргарита", Variants: []string{"Маргарет"}, Latin: []string{"Margarita", "Margaret"}},
			{Name: "Невен", Variants: []string{"Невена", "Невян", "Невяна", "Ненка"}, Latin: []string{"Neven", "Nevena", "Nevyan", "Nevyana", "Nenka"}},
			{Name: "Росен", Variants: []string{"Росица", "Росина"}, Latin: []string{"Rosen", "Rositsa", "Rosina"}},
			{Name: "Камелия", Variants: []string{}, Latin: []string{"Kameliya"}},
			{Name: "Лилия", Variants: []string{"Лиляна", "Лила", "Лили"}, Latin: []string{"Liliya", "Lilyana", "Lila", "Lili"}},
			{Name: "Ясен", Variants: []string{"Ясена", "Ясмина", "Жасмина"}, Latin: []string{"Yasen", "Yasena", "Yasmina", "Zhasmina"}},
			{Name: "Явор", Variants: []string{"Яворка"}, Latin: []string{"Yavor", "Yavorka"}},
			{Name: "Калина", Variants: []string{"Калинка"}, Latin: []string{"Kalina", "Kalinka"}},
			{Name: "Здравко", Variants: []string{"Здравка"}, Latin: []string{"Zdravko", "Zdravka"}},
			{Name: "Детелина", Variants: []string{"Делян", "Делянка", "Деляна", "Дилян", "Диляна"}, Latin: []string{"Detelina", "Delyan", "Delyanka", "Delyana", "Dilyan", "Dilyana"}},
			{Name: "Карамфил", Variants: []string{"Карамфила"}, Latin: []string{"Karamfil", "Karamfila"}},
			{Name: "Латинка", Variants: []string{"Латин"}, Latin: []string{"Latinka", "Latin"}},
			{Name: "Теменужка", Variants: []string{}, Latin: []string{"Temenuzhka"}},
			{Name: "Дафина", Variants: []string{"Далия"}, Latin: []string{"Dafina", "Daliya"}},
			{Name: "Трендафил", Variants: []string{"Трендафила"}, Latin: []string{"Trendafil", "Trendafila"}},
			{Name: "Божура", Variants: []string{}, Latin: []string{"Bozhura"}},
			{Name: "Гроздена", Variants: []string{"Гроздан", "Гроздана"}, Latin: []string{"Grozdena", "Grozdan", "Grozdana"}},
			{Name: "Ива", Variants: []string{"Ивана"}, Latin: []string{"Iva", "Ivana"}},
			{Name: "Малина", Variants: []string{}, Latin: []string{"Malina"}},
			{Name: "Ралица", Variants: []string{}, Latin: []string{"Ralitsa"}},
			{Name: "Елица", Variants: []string{}, Latin: []string{"Elitsa"}},
			{Name: "Върбан", Variants: []string{"Върбинка", "Върба"}, Latin: []string{"Varban", "Varbinka", "Varba"}},
			{Name: "Магнолия", Variants: []string{}, Latin: []string{"Magnoliya"}},
			{Name: "Иглика", Variants: []string{"Иглена"}, Latin: []string{"Iglika", "Iglena"}},
			{Name: "Зюмбюла", Variants: []string{}, Latin: []string{"Zyumbyula"}},
			{Name: "Люляна", Variants: []string{"Люлин", "Люлина"}, Latin: []string{"Lyulyana", "Lyulin", "Lyulina"}},
			{Name: "Лоза", Variants: []string{"Лозана"}, Latin: []string{"Loza", "Lozana"}},
			{Name: "Ренета", Variants: []string{}, Latin: []string{"Reneta"}},
			{Name: "Китка", Variants: []string{}, Latin: []string{"Kitka"}},
			{Name: "Орхидея", Variants: []string{}, Latin: []string{"Orhideya"}},
			{Name: "Аглика", Variants: []string{}, Latin: []string{"Aglika"}},
			{Name: "Гергина", Variants: []string{"Гергинка"}, Latin: []string{"Gergina", "Gerginka"}},
		},
	},
	{
		ID:           "velikden",
		Holiday:      "Великден (Възкресение Христово)",
		HolidayLatin: "Velikden (Vazskresenie Hristovo)",
		OffsetDays:   0,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Велика", Variants: []string{"Величка", "Вела", "Велислава"}, Latin: []string{"Velika", "Velichka", "Vela", "Velislava"}},
			{Name: "Велико", Variants: []string{"Велин", "Велко", "Вельо", "Велимир", "Велислав"}, Latin: []string{"Veliko", "Velin", "Velko", "Velyo", "Velimir", "Velislav"}},
			{Name: "Велина", Variants: []string{"Велка", "Велимира"}, Latin: []string{"Velina", "Velka", "Velimira"}},
			{Name: "Паскал", Variants: []string{"Паска", "Паскалина"}, Latin: []string{"Paskal", "Paska", "Paskalina"}},
		},
	},
	{
		ID:           "spasovden",
		Holiday:      "Спасовден (Възнесение Господне)",
		HolidayLatin: "Spasovden (Vaznesenie Gospodne)",
		OffsetDays:   39,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Спас", Variants: []string{"Спасен", "Спасимир", "Спасимира"}, Latin: []string{"Spas", "Spasen", "Spasimir", "Spasimira"}},
			{Name: "Спасена", Variants: []string{"Спасия", "Спаска"}, Latin: []string{"Spasena", "Spasiya", "Spaska"}},
		},
	},
	{
		ID:           "petdesetnitsa",
		Holiday:      "Петдесетница (Света Троица)",
		HolidayLatin: "Petdesetnitsa (Sveta Troitsa)",
		OffsetDays:   49,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Трайко", Variants: []string{"Траян", "Траяна", "Троянка"}, Latin: []string{"Trayko", "Trayan", "Trayana", "Troyanka"}},
		},
	},
	{
		ID:           "duhovden",
		Holiday:      "Духов ден (Свети Дух)",
		HolidayLatin: "Duhov den (Sveti Duh)",
		OffsetDays:   50,
		Tradition:    nameday.TraditionOrthodox,
		Roster: []nameday.RosterName{
			{Name: "Пламен", Variants: []string{"Пламена"}, Latin: []string{"Plamen", "Plamena"}},
		},
	},
}
