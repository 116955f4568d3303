// Package namedata holds the immutable name-day dataset: the fixed-date
// entries and the movable-holiday catalogue. Both are loaded once at
// process start and never written afterwards; the engine consumes them as
// already-validated input.
package namedata

import "github.com/bgcalendar/nameday-api/internal/nameday"

// Fixed is the table of entries whose calendar date is the same every
// year, in calendar order.
var Fixed = []nameday.Entry{
	// January
	{Name: "Васил", Variants: []string{"Василка", "Василена", "Вася", "Васко"}, Latin: []string{"Vasil", "Vasilka", "Vasilena", "Vasya", "Vasko"}, Month: 1, Day: 1, Holiday: "Васильовден", HolidayLatin: "Vasilyovden", Tradition: nameday.TraditionBoth},
	{Name: "Йордан", Variants: []string{"Йорданка", "Данчо", "Дана"}, Latin: []string{"Yordan", "Yordanka", "Dancho", "Dana"}, Month: 1, Day: 6, Holiday: "Йордановден (Богоявление)", HolidayLatin: "Yordanovden (Bogoyavlenie)", Tradition: nameday.TraditionOrthodox},
	{Name: "Богдан", Variants: []string{"Богдана", "Богомил", "Богомила"}, Latin: []string{"Bogdan", "Bogdana", "Bogomil", "Bogomila"}, Month: 1, Day: 6, Holiday: "Йордановден (Богоявление)", HolidayLatin: "Yordanovden (Bogoyavlenie)", Tradition: nameday.TraditionOrthodox},
	{Name: "Иван", Variants: []string{"Иванка", "Ваньо", "Ванко", "Ваня", "Йоан", "Йоана"}, Latin: []string{"Ivan", "Ivanka", "Vanyo", "Vanko", "Vanya", "Yoan", "Yoana"}, Month: 1, Day: 7, Holiday: "Ивановден", HolidayLatin: "Ivanovden", Tradition: nameday.TraditionBoth},
	{Name: "Стефан", Variants: []string{"Стефана", "Стефка", "Стефания"}, Latin: []string{"Stefan", "Stefana", "Stefka", "Stefaniya"}, Month: 1, Day: 9, Holiday: "Свети Стефан", HolidayLatin: "Sveti Stefan", Tradition: nameday.TraditionOrthodox},
	{Name: "Татяна", Variants: []string{"Таня", "Татяния"}, Latin: []string{"Tatyana", "Tanya", "Tatyaniya"}, Month: 1, Day: 12, Holiday: "Татяновден", HolidayLatin: "Tatyanovden", Tradition: nameday.TraditionOrthodox},
	{Name: "Антон", Variants: []string{"Антония", "Антоанета", "Тончо", "Тоня"}, Latin: []string{"Anton", "Antoniya", "Antoaneta", "Toncho", "Tonya"}, Month: 1, Day: 17, Holiday: "Антоновден", HolidayLatin: "Antonovden", Tradition: nameday.TraditionBoth},
	{Name: "Атанас", Variants: []string{"Атанаска", "Наско", "Начо"}, Latin: []string{"Atanas", "Atanaska", "Nasko", "Nacho"}, Month: 1, Day: 18, Holiday: "Атанасовден", HolidayLatin: "Atanasovden", Tradition: nameday.TraditionBoth},
	{Name: "Евтим", Variants: []string{"Евтимия", "Ефтим"}, Latin: []string{"Evtim", "Evtimiya", "Eftim"}, Month: 1, Day: 20, Holiday: "Евтимовден", HolidayLatin: "Evtimovden", Tradition: nameday.TraditionOrthodox},
	{Name: "Максим", Variants: []string{"Максима"}, Latin: []string{"Maksim", "Maksima"}, Month: 1, Day: 21, Holiday: "Св. Максим Изповедник", HolidayLatin: "Sv. Maksim Izpovednik", Tradition: nameday.TraditionOrthodox},

	// February
	{Name: "Трифон", Variants: []string{"Трифонка"}, Latin: []string{"Trifon", "Trifonka"}, Month: 2, Day: 1, Holiday: "Трифон Зарезан", HolidayLatin: "Trifon Zarezan", Tradition: nameday.TraditionBoth},
	{Name: "Светла", Variants: []string{"Светлана", "Светлин", "Светлина", "Светльо"}, Latin: []string{"Svetla", "Svetlana", "Svetlin", "Svetlina", "Svetlyo"}, Month: 2, Day: 2, Holiday: "Сретение Господне", HolidayLatin: "Sretenie Gospodne", Tradition: nameday.TraditionOrthodox},
	{Name: "Харалампи", Variants: []string{"Ламби"}, Latin: []string{"Haralampi", "Lambi"}, Month: 2, Day: 10, Holiday: "Св. Харалампий (Чуминден)", HolidayLatin: "Sv. Haralampiy (Chuminden)", Tradition: nameday.TraditionBoth},
	{Name: "Влас", Variants: []string{"Власи"}, Latin: []string{"Vlas", "Vlasi"}, Month: 2, Day: 11, Holiday: "Власовден", HolidayLatin: "Vlasovden", Tradition: nameday.TraditionFolk},
	{Name: "Зоя", Variants: []string{"Зойка"}, Latin: []string{"Zoya", "Zoyka"}, Month: 2, Day: 13, Holiday: "Света Зоя", HolidayLatin: "Sveta Zoya", Tradition: nameday.TraditionOrthodox},

	// March
	{Name: "Марта", Variants: []string{"Мартина"}, Latin: []string{"Marta", "Martina"}, Month: 3, Day: 1, Holiday: "Баба Марта", HolidayLatin: "Baba Marta", Tradition: nameday.TraditionFolk},
	{Name: "Младен", Variants: []string{"Младена"}, Latin: []string{"Mladen", "Mladena"}, Month: 3, Day: 9, Holiday: "Младенци", HolidayLatin: "Mladentsi", Tradition: nameday.TraditionOrthodox},
	{Name: "Алекси", Variants: []string{"Алекса"}, Latin: []string{"Aleksi", "Aleksa"}, Month: 3, Day: 17, Holiday: "Св. Алексий човек Божий", HolidayLatin: "Sv. Aleksiy chovek Bozhiy", Tradition: nameday.TraditionOrthodox},
	{Name: "Благовест", Variants: []string{"Благовеста", "Блага", "Благой"}, Latin: []string{"Blagovest", "Blagovesta", "Blaga", "Blagoy"}, Month: 3, Day: 25, Holiday: "Благовещение", HolidayLatin: "Blagoveshtenie", Tradition: nameday.TraditionOrthodox},
	{Name: "Гавраил", Variants: []string{"Габриела", "Гаврил"}, Latin: []string{"Gavrail", "Gabriela", "Gavril"}, Month: 3, Day: 26, Holiday: "Събор на архангел Гавриил", HolidayLatin: "Sabor na arhangel Gavriil", Tradition: nameday.TraditionOrthodox},

	// April
	{Name: "Никита", Variants: []string{}, Latin: []string{"Nikita"}, Month: 4, Day: 3, Holiday: "Св. Никита Изповедник", HolidayLatin: "Sv. Nikita Izpovednik", Tradition: nameday.TraditionOrthodox},
	{Name: "Мартин", Variants: []string{"Мартина"}, Latin: []string{"Martin", "Martina"}, Month: 4, Day: 14, Holiday: "Св. Мартин Изповедник", HolidayLatin: "Sv. Martin Izpovednik", Tradition: nameday.TraditionOrthodox},
	{Name: "Галина", Variants: []string{"Галя", "Галена"}, Latin: []string{"Galina", "Galya", "Galena"}, Month: 4, Day: 16, Holiday: "Света Галина", HolidayLatin: "Sveta Galina", Tradition: nameday.TraditionOrthodox},
	{Name: "Марко", Variants: []string{"Марк"}, Latin: []string{"Marko", "Mark"}, Month: 4, Day: 25, Holiday: "Марковден", HolidayLatin: "Markovden", Tradition: nameday.TraditionBoth},
	{Name: "Яков", Variants: []string{}, Latin: []string{"Yakov"}, Month: 4, Day: 30, Holiday: "Св. апостол Яков", HolidayLatin: "Sv. apostol Yakov", Tradition: nameday.TraditionOrthodox},

	// May
	{Name: "Борис", Variants: []string{"Боряна", "Борислав", "Борислава", "Боби"}, Latin: []string{"Boris", "Boryana", "Borislav", "Borislava", "Bobi"}, Month: 5, Day: 2, Holiday: "Борисовден", HolidayLatin: "Borisovden", Tradition: nameday.TraditionOrthodox},
	{Name: "Ирина", Variants: []string{"Ирена", "Рени"}, Latin: []string{"Irina", "Irena", "Reni"}, Month: 5, Day: 5, Holiday: "Ирининден", HolidayLatin: "Irininden", Tradition: nameday.TraditionOrthodox},
	{Name: "Георги", Variants: []string{"Гергана", "Гошо", "Жоро", "Гинка", "Ганчо"}, Latin: []string{"Georgi", "Gergana", "Gosho", "Zhoro", "Ginka", "Gancho"}, Month: 5, Day: 6, Holiday: "Гергьовден", HolidayLatin: "Gergyovden", Tradition: nameday.TraditionBoth},
	{Name: "Кирил", Variants: []string{"Кирилка", "Киро"}, Latin: []string{"Kiril", "Kirilka", "Kiro"}, Month: 5, Day: 11, Holiday: "Св. св. Кирил и Методий", HolidayLatin: "Sv. sv. Kiril i Metodiy", Tradition: nameday.TraditionOrthodox},
	{Name: "Методи", Variants: []string{"Методий", "Мето"}, Latin: []string{"Metodi", "Metodiy", "Meto"}, Month: 5, Day: 11, Holiday: "Св. св. Кирил и Методий", HolidayLatin: "Sv. sv. Kiril i Metodiy", Tradition: nameday.TraditionOrthodox},
	{Name: "Константин", Variants: []string{"Костадин", "Косьо", "Коце"}, Latin: []string{"Konstantin", "Kostadin", "Kosyo", "Kotse"}, Month: 5, Day: 21, Holiday: "Св. св. Константин и Елена", HolidayLatin: "Sv. sv. Konstantin i Elena", Tradition: nameday.TraditionBoth},
	{Name: "Елена", Variants: []string{"Еленка", "Ели", "Лена"}, Latin: []string{"Elena", "Elenka", "Eli", "Lena"}, Month: 5, Day: 21, Holiday: "Св. св. Константин и Елена", HolidayLatin: "Sv. sv. Konstantin i Elena", Tradition: nameday.TraditionBoth},

	// June
	{Name: "Еньо", Variants: []string{"Енчо", "Яньо"}, Latin: []string{"Enyo", "Encho", "Yanyo"}, Month: 6, Day: 24, Holiday: "Еньовден", HolidayLatin: "Enyovden", Tradition: nameday.TraditionFolk},
	{Name: "Яна", Variants: []string{"Янка", "Яника"}, Latin: []string{"Yana", "Yanka", "Yanika"}, Month: 6, Day: 24, Holiday: "Еньовден", HolidayLatin: "Enyovden", Tradition: nameday.TraditionFolk},
	{Name: "Петър", Variants: []string{"Петра", "Пешо", "Петьо"}, Latin: []string{"Petar", "Petra", "Pesho", "Petyo"}, Month: 6, Day: 29, Holiday: "Петровден", HolidayLatin: "Petrovden", Tradition: nameday.TraditionBoth},
	{Name: "Павел", Variants: []string{"Павлина", "Павлин"}, Latin: []string{"Pavel", "Pavlina", "Pavlin"}, Month: 6, Day: 29, Holiday: "Петровден", HolidayLatin: "Petrovden", Tradition: nameday.TraditionBoth},
	{Name: "Апостол", Variants: []string{"Апостолина"}, Latin: []string{"Apostol", "Apostolina"}, Month: 6, Day: 30, Holiday: "Събор на светите апостоли", HolidayLatin: "Sabor na svetite apostoli", Tradition: nameday.TraditionOrthodox},

	// July
	{Name: "Неделя", Variants: []string{"Недялка", "Деля"}, Latin: []string{"Nedelya", "Nedyalka", "Delya"}, Month: 7, Day: 7, Holiday: "Света Неделя", HolidayLatin: "Sveta Nedelya", Tradition: nameday.TraditionOrthodox},
	{Name: "Владимир", Variants: []string{"Влади", "Владо"}, Latin: []string{"Vladimir", "Vladi", "Vlado"}, Month: 7, Day: 15, Holiday: "Св. Владимир", HolidayLatin: "Sv. Vladimir", Tradition: nameday.TraditionOrthodox},
	{Name: "Марина", Variants: []string{"Марин", "Маринела"}, Latin: []string{"Marina", "Marin", "Marinela"}, Month: 7, Day: 17, Holiday: "Света Марина", HolidayLatin: "Sveta Marina", Tradition: nameday.TraditionBoth},
	{Name: "Илия", Variants: []string{"Илияна", "Илко", "Илка"}, Latin: []string{"Iliya", "Iliyana", "Ilko", "Ilka"}, Month: 7, Day: 20, Holiday: "Илинден", HolidayLatin: "Ilinden", Tradition: nameday.TraditionBoth},
	{Name: "Пантелей", Variants: []string{}, Latin: []string{"Panteley"}, Month: 7, Day: 27, Holiday: "Пантелеймоновден", HolidayLatin: "Panteleymonovden", Tradition: nameday.TraditionOrthodox},

	// August
	{Name: "Преслав", Variants: []string{"Преслава"}, Latin: []string{"Preslav", "Preslava"}, Month: 8, Day: 6, Holiday: "Преображение Господне", HolidayLatin: "Preobrazhenie Gospodne", Tradition: nameday.TraditionOrthodox},
	{Name: "Мария", Variants: []string{"Мара", "Марийка", "Мариана", "Мими"}, Latin: []string{"Mariya", "Mara", "Mariyka", "Mariana", "Mimi"}, Month: 8, Day: 15, Holiday: "Голяма Богородица (Успение Богородично)", HolidayLatin: "Golyama Bogoroditsa (Uspenie Bogorodichno)", Tradition: nameday.TraditionBoth},
	{Name: "Самуил", Variants: []string{}, Latin: []string{"Samuil"}, Month: 8, Day: 20, Holiday: "Св. пророк Самуил", HolidayLatin: "Sv. prorok Samuil", Tradition: nameday.TraditionOrthodox},
	{Name: "Наталия", Variants: []string{"Натали", "Наташа"}, Latin: []string{"Nataliya", "Natali", "Natasha"}, Month: 8, Day: 26, Holiday: "Св. Адриан и Наталия", HolidayLatin: "Sv. Adrian i Nataliya", Tradition: nameday.TraditionOrthodox},
	{Name: "Александър", Variants: []string{"Александра", "Сашо", "Сашка", "Алекс"}, Latin: []string{"Aleksandar", "Aleksandra", "Sasho", "Sashka", "Aleks"}, Month: 8, Day: 30, Holiday: "Св. Александър", HolidayLatin: "Sv. Aleksandar", Tradition: nameday.TraditionOrthodox},

	// September
	{Name: "Симеон", Variants: []string{"Симона", "Мони", "Моньо"}, Latin: []string{"Simeon", "Simona", "Moni", "Monyo"}, Month: 9, Day: 1, Holiday: "Симеоновден", HolidayLatin: "Simeonovden", Tradition: nameday.TraditionBoth},
	{Name: "Кръстьо", Variants: []string{"Кръстина", "Кръстан"}, Latin: []string{"Krastyo", "Krastina", "Krastan"}, Month: 9, Day: 14, Holiday: "Кръстовден", HolidayLatin: "Krastovden", Tradition: nameday.TraditionBoth},
	{Name: "Вяра", Variants: []string{"Верка"}, Latin: []string{"Vyara", "Verka"}, Month: 9, Day: 17, Holiday: "Св. София, Вяра, Надежда и Любов", HolidayLatin: "Sv. Sofiya, Vyara, Nadezhda i Lyubov", Tradition: nameday.TraditionOrthodox},
	{Name: "Надежда", Variants: []string{"Надя"}, Latin: []string{"Nadezhda", "Nadya"}, Month: 9, Day: 17, Holiday: "Св. София, Вяра, Надежда и Любов", HolidayLatin: "Sv. Sofiya, Vyara, Nadezhda i Lyubov", Tradition: nameday.TraditionOrthodox},
	{Name: "Любов", Variants: []string{"Люба", "Любка"}, Latin: []string{"Lyubov", "Lyuba", "Lyubka"}, Month: 9, Day: 17, Holiday: "Св. София, Вяра, Надежда и Любов", HolidayLatin: "Sv. Sofiya, Vyara, Nadezhda i Lyubov", Tradition: nameday.TraditionOrthodox},
	{Name: "София", Variants: []string{"Софка", "Софи"}, Latin: []string{"Sofiya", "Sofka", "Sofi"}, Month: 9, Day: 17, Holiday: "Св. София, Вяра, Надежда и Любов", HolidayLatin: "Sv. Sofiya, Vyara, Nadezhda i Lyubov", Tradition: nameday.TraditionOrthodox},

	// October
	{Name: "Тома", Variants: []string{"Томислав", "Томислава"}, Latin: []string{"Toma", "Tomislav", "Tomislava"}, Month: 10, Day: 6, Holiday: "Томинден", HolidayLatin: "Tominden", Tradition: nameday.TraditionOrthodox},
	{Name: "Петко", Variants: []string{"Петка", "Пенка"}, Latin: []string{"Petko", "Petka", "Penka"}, Month: 10, Day: 14, Holiday: "Петковден", HolidayLatin: "Petkovden", Tradition: nameday.TraditionBoth},
	{Name: "Лука", Variants: []string{}, Latin: []string{"Luka"}, Month: 10, Day: 18, Holiday: "Св. апостол и евангелист Лука", HolidayLatin: "Sv. apostol i evangelist Luka", Tradition: nameday.TraditionOrthodox},
	{Name: "Злата", Variants: []string{"Златка", "Златина", "Златко", "Златан"}, Latin: []string{"Zlata", "Zlatka", "Zlatina", "Zlatko", "Zlatan"}, Month: 10, Day: 18, Holiday: "Св. Злата Мъгленска", HolidayLatin: "Sv. Zlata Maglenska", Tradition: nameday.TraditionOrthodox},
	{Name: "Димитър", Variants: []string{"Димитрина", "Митко", "Мите", "Мима"}, Latin: []string{"Dimitar", "Dimitrina", "Mitko", "Mite", "Mima"}, Month: 10, Day: 26, Holiday: "Димитровден", HolidayLatin: "Dimitrovden", Tradition: nameday.TraditionBoth},

	// November
	{Name: "Михаил", Variants: []string{"Михаела", "Мишо", "Михо"}, Latin: []string{"Mihail", "Mihaela", "Misho", "Miho"}, Month: 11, Day: 8, Holiday: "Архангеловден", HolidayLatin: "Arhangelovden", Tradition: nameday.TraditionBoth},
	{Name: "Ангел", Variants: []string{"Ангелина", "Рангел", "Ангелинка"}, Latin: []string{"Angel", "Angelina", "Rangel", "Angelinka"}, Month: 11, Day: 8, Holiday: "Архангеловден", HolidayLatin: "Arhangelovden", Tradition: nameday.TraditionBoth},
	{Name: "Мина", Variants: []string{"Минка", "Минчо"}, Latin: []string{"Mina", "Minka", "Mincho"}, Month: 11, Day: 11, Holiday: "Минковден", HolidayLatin: "Minkovden", Tradition: nameday.TraditionOrthodox},
	{Name: "Матей", Variants: []string{"Матея"}, Latin: []string{"Matey", "Mateya"}, Month: 11, Day: 16, Holiday: "Св. апостол и евангелист Матей", HolidayLatin: "Sv. apostol i evangelist Matey", Tradition: nameday.TraditionOrthodox},
	{Name: "Екатерина", Variants: []string{"Катя", "Катерина", "Кети"}, Latin: []string{"Ekaterina", "Katya", "Katerina", "Keti"}, Month: 11, Day: 24, Holiday: "Св. Екатерина", HolidayLatin: "Sv. Ekaterina", Tradition: nameday.TraditionOrthodox},
	{Name: "Андрей", Variants: []string{"Андриана", "Андро"}, Latin: []string{"Andrey", "Andriana", "Andro"}, Month: 11, Day: 30, Holiday: "Андреевден", HolidayLatin: "Andreevden", Tradition: nameday.TraditionBoth},

	// December
	{Name: "Варвара", Variants: []string{"Варя"}, Latin: []string{"Varvara", "Varya"}, Month: 12, Day: 4, Holiday: "Света Варвара", HolidayLatin: "Sveta Varvara", Tradition: nameday.TraditionBoth},
	{Name: "Сава", Variants: []string{"Савка"}, Latin: []string{"Sava", "Savka"}, Month: 12, Day: 5, Holiday: "Савинден", HolidayLatin: "Savinden", Tradition: nameday.TraditionBoth},
	{Name: "Никола", Variants: []string{"Николай", "Николина", "Кольо", "Ники", "Николета"}, Latin: []string{"Nikola", "Nikolay", "Nikolina", "Kolyo", "Niki", "Nikoleta"}, Month: 12, Day: 6, Holiday: "Никулден", HolidayLatin: "Nikulden", Tradition: nameday.TraditionBoth},
	{Name: "Анна", Variants: []string{"Ани", "Анка"}, Latin: []string{"Anna", "Ani", "Anka"}, Month: 12, Day: 9, Holiday: "Зачатие на Света Анна", HolidayLatin: "Zachatie na Sveta Anna", Tradition: nameday.TraditionOrthodox},
	{Name: "Игнат", Variants: []string{"Игната", "Огнян", "Огняна"}, Latin: []string{"Ignat", "Ignata", "Ognyan", "Ognyana"}, Month: 12, Day: 20, Holiday: "Игнажден", HolidayLatin: "Ignazhden", Tradition: nameday.TraditionBoth},
	{Name: "Христо", Variants: []string{"Христина", "Ицо", "Хриси"}, Latin: []string{"Hristo", "Hristina", "Itso", "Hrisi"}, Month: 12, Day: 25, Holiday: "Коледа (Рождество Христово)", HolidayLatin: "Koleda (Rozhdestvo Hristovo)", Tradition: nameday.TraditionBoth},
	{Name: "Емануил", Variants: []string{"Емануела", "Мануела"}, Latin: []string{"Emanuil", "Emanuela", "Manuela"}, Month: 12, Day: 25, Holiday: "Коледа (Рождество Христово)", HolidayLatin: "Koleda (Rozhdestvo Hristovo)", Tradition: nameday.TraditionBoth},
	{Name: "Стефан", Variants: []string{"Стефана", "Стефка", "Фани"}, Latin: []string{"Stefan", "Stefana", "Stefka", "Fani"}, Month: 12, Day: 27, Holiday: "Стефановден", HolidayLatin: "Stefanovden", Tradition: nameday.TraditionBoth},
	{Name: "Мелания", Variants: []string{"Мела"}, Latin: []string{"Melaniya", "Mela"}, Month: 12, Day: 31, Holiday: "Св. Мелания Римлянка", HolidayLatin: "Sv. Melaniya Rimlyanka", Tradition: nameday.TraditionOrthodox},
}
