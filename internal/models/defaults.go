// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package models

// defaults.go carries the content the site ships with before the remote
// store has ever been written: the global sections, the full translation
// tree for all three locales, and the starter category set. The state
// container starts from these values and the fetch path only overwrites
// what the remote document actually contains.

// DefaultCategories is the starter portfolio category set.
func DefaultCategories() []string {
	return []string{"Branding", "3D", "3D Animation", "2D Arts", "2D Animation", "UI/UX", "Game Dev", "Web App"}
}

// DefaultSiteContent returns the full default content tree.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		Hero: HeroBlock{
			HeadlineFirst:  "PURE",
			HeadlineSecond: "DESIGN",
			Subhead:        "Senior Designer Portfolio",
		},
		About: AboutBlock{
			ImageURL:    "/profile.png",
			CV:          "",
			Tag:         "Who I am",
			Title:       "Designing the \nFuture of Digital.",
			Description: "Senior Designer with 8+ years of experience in Branding, GameDev, and 3D Interactive Web. I build immersive digital experiences that blend aesthetics with functionality.",
			Stats: []Stat{
				{Num: "08+", Label: "Years Exp"},
				{Num: "50+", Label: "Projects"},
				{Num: "15", Label: "Awards"},
			},
		},
		Contact: ContactBlock{
			Email:    "hello@daniyar.design",
			Location: "Almaty, Kazakhstan",
			Status:   "Available for freelance",
		},
		Translations: map[Locale]LocaleContent{
			LocaleENG: defaultENG(),
			LocaleRUS: defaultRUS(),
			LocaleKAZ: defaultKAZ(),
		},
	}
}

func defaultLinks() SocialLinks {
	return SocialLinks{
		Behance:   "https://www.behance.net/1f4065a9",
		Telegram:  "https://t.me/maskundesqorap",
		LinkedIn:  "https://linkedin.com",
		Instagram: "https://instagram.com",
	}
}

func defaultENG() LocaleContent {
	return LocaleContent{
		Nav: NavSection{Works: "Works", Services: "Services", About: "About", Contact: "Contact"},
		Hero: LocaleHero{
			HeadlineFirst:  "PURE",
			HeadlineSecond: "DESIGN",
			Sub:            "Senior Designer Portfolio",
			CTA:            "Let's Work",
			About:          "About Me",
			Customers:      "+18k Happy Customers",
			NewColl:        "NEW COLLECTION",
			Join:           "Join a community of like-minded individuals.",
		},
		About: LocaleAbout{
			Tag:   "Who I am",
			Title: "Visionary Thinking. \nCreative Approach.",
			Desc:  "I am a Senior Graphic Designer with a rich background in Branding, Motion, and Web Design. I combine aesthetics with functionality to create visual solutions that not only look good but also solve business problems. My expertise covers the full design lifecycle — from idea to high-quality execution.",
			Links: defaultLinks(),
			Skills: []Skill{
				{Name: "Adobe Photoshop", Level: 95, Label: "Advanced"},
				{Name: "Adobe Illustrator", Level: 90, Label: "Advanced"},
				{Name: "Figma", Level: 95, Label: "Expert"},
				{Name: "CorelDRAW", Level: 85, Label: "Proficient"},
				{Name: "Blender 3D", Level: 80, Label: "Intermediate"},
				{Name: "After Effects", Level: 75, Label: "Working knowledge"},
				{Name: "HTML / CSS", Level: 60, Label: "Basic"},
			},
		},
		Portfolio: PortfolioSection{
			Title: "Selected Works",
			Empty: "No projects in this category yet.",
			View:  "View Case",
			Visit: "Visit Live Site",
		},
		Services: ServicesSection{
			Title: "Services",
			Sub:   "Design Solutions",
			Packages: []ServicePackage{
				{
					ID:       1,
					Title:    "Brand Start",
					Subtitle: "Identity & POS",
					For:      "Startups & Redesigns",
					Desc:     "Creating a visual image with a focus on practical application.",
					Includes: []string{"Logo (3 variants)", "Visual Style (Colors, Fonts)", "Mini Guideline", "Basic Polygraphy (Cards, Flyers)"},
					Value:    "Not just a picture, but a ready-to-sell toolset.",
				},
				{
					ID:       2,
					Title:    "Visualization & Motion",
					Subtitle: "3D & Animation",
					For:      "Product Business & Ads",
					Desc:     "Premium 3D presentation that sells better than 2D.",
					Includes: []string{"3D Product Modeling", "Animation (15-30s)", "Social Media Adaptation", "Photo-realistic Renders"},
					Feature:  true,
					Value:    "High-end product presentation that stands out.",
				},
				{
					ID:       3,
					Title:    "Turnkey Website",
					Subtitle: "Web & Mobile",
					For:      "Experts & Services",
					Desc:     "Complete business packaging online.",
					Includes: []string{"Competitor Analysis", "Prototype & Copywriting", "UI Design (Figma)", "Tilda/Webflow Dev (Optional)"},
					Value:    "A site that converts visitors into clients.",
				},
			},
		},
		Process: ProcessSection{
			Sub:   "Workflow",
			Title: "Working Process",
			Steps: []ProcessStep{
				{Num: "01", Title: "Briefing", Desc: "We discuss your goals and requirements via Zoom or Google Meet."},
				{Num: "02", Title: "Moodboard", Desc: "I prepare a visual direction style to ensure we are on the same page."},
				{Num: "03", Title: "Drafts", Desc: "Creating initial concepts and showing you the first results."},
				{Num: "04", Title: "Revisions", Desc: "Refining the design. Includes 2-3 rounds of free edits to polish details."},
				{Num: "05", Title: "Final", Desc: "Handover of all source files and assets ready for use."},
			},
		},
		Inquiry: InquirySection{Title: "Start a Project", Sub: "Tell me about your vision.", Btn: "Send Inquiry", Sending: "Sending..."},
		Contact: LocaleContact{Location: "Available for freelance", Title: "Let's work \ntogether.", Tag: "Contact"},
		Quiz: QuizSection{
			IntroTitle:   "Calculate Cost & Time",
			IntroDesc:    "Answer 4 simple questions to get a commercial proposal + 10% Discount on your first order.",
			BtnStart:     "Start Calculation",
			FormTitle:    "Last Step!",
			FormDesc:     "Leave your contacts to receive the proposal.",
			Placeholders: QuizPlaceholders{Name: "Your Name", Email: "Email", Phone: "Phone (Optional)"},
			BtnSubmit:    "Get Result",
			SuccessTitle: "Received!",
			SuccessDesc:  "I'll analyze your answers and send a proposal shorty.",
			BtnReset:     "Start Over",
			Questions: []QuizQuestion{
				{ID: "task", Question: "What is your primary task?", Options: []string{"Logo & Brand Identity", "3D Animation / Motion", "Website / Landing Page", "Full Packaging (Brand + Web)", "Other / One-off Task"}},
				{ID: "ref", Question: "Do you have ready references?", Options: []string{"Yes, everything is ready", "I have examples I like", "Nothing yet, need ideas"}},
				{ID: "budget", Question: "What is your estimated budget?", Options: []string{"Up to 100,000 ₸", "100,000 – 300,000 ₸", "300,000 – 1,000,000 ₸", "Budget not limited / Discuss"}},
				{ID: "deadline", Question: "How urgent is the project?", Options: []string{"ASAP (Urgent Tariff)", "1-2 Weeks", "Within a Month", "No rush"}},
			},
		},
		Pricing: PricingSection{
			Title: "Start a Project",
			Sub:   "Estimate your investment",
			Label: "Your Budget",
			Btn:   "Calculate Timeline",
		},
	}
}

func defaultRUS() LocaleContent {
	return LocaleContent{
		Nav: NavSection{Works: "Работы", Services: "Услуги", About: "Обо мне", Contact: "Контакты"},
		Hero: LocaleHero{
			HeadlineFirst:  "ЧИСТЫЙ",
			HeadlineSecond: "ДИЗАЙН",
			Sub:            "Портфолио Дизайнера",
			CTA:            "Давайте работать",
			About:          "Обо мне",
			Customers:      "+18k Довольных клиентов",
			NewColl:        "НОВАЯ КОЛЛЕКЦИЯ",
			Join:           "Присоединяйтесь к сообществу единомышленников.",
		},
		About: LocaleAbout{
			Tag:   "Кто я",
			Title: "Визионерское \nМышление.",
			Desc:  "Я обладаю богатым опытом в графическом дизайне, что позволяет мне вести проект от идеи до реализации. Мои навыки включают Adobe Photoshop, Illustrator, CorelDRAW, Figma, а также 3D Blender и After Effects. Я стремлюсь создавать дизайн, который вызывает эмоции и эффективно решает задачи бренда.",
			Links: defaultLinks(),
			Skills: []Skill{
				{Name: "Adobe Photoshop", Level: 95, Label: "Продвинутый"},
				{Name: "Adobe Illustrator", Level: 90, Label: "Продвинутый"},
				{Name: "Figma", Level: 95, Label: "Эксперт"},
				{Name: "CorelDRAW", Level: 85, Label: "Опытный"},
				{Name: "Blender 3D", Level: 80, Label: "Средний"},
				{Name: "After Effects", Level: 75, Label: "Рабочий уровень"},
				{Name: "HTML / CSS", Level: 60, Label: "Базовый"},
			},
		},
		Portfolio: PortfolioSection{
			Title: "Избранные Проекты",
			Empty: "В этой категории пока нет проектов.",
			View:  "Смотреть Кейс",
			Visit: "Перейти на сайт",
		},
		Services: ServicesSection{
			Title: "Услуги",
			Sub:   "Пакеты услуг",
			Packages: []ServicePackage{
				{
					ID:       1,
					Title:    "Бренд-старт",
					Subtitle: "Identity & POS",
					For:      "Стартапы и Редизайн",
					Desc:     "Создание визуального образа с упором на практику.",
					Includes: []string{"Логотип (3 варианта)", "Фирменный стиль", "Гайдлайн (Mini)", "Полиграфия (Визитки, Бланки)"},
					Value:    "Не просто картинка, а набор инструментов для продаж.",
				},
				{
					ID:       2,
					Title:    "Визуализация и Motion",
					Subtitle: "3D & Animation",
					For:      "Товарный бизнес и Реклама",
					Desc:     "3D продает дороже обычного 2D дизайна.",
					Includes: []string{"3D-моделирование", "Анимационный ролик (15-30с)", "Адаптация под Сторис", "Фотореалистичные рендеры"},
					Feature:  true,
					Value:    "Дорогая подача, которая выделяет на фоне конкурентов.",
				},
				{
					ID:       3,
					Title:    "Сайт под ключ",
					Subtitle: "Web & Mobile",
					For:      "Эксперты и Услуги",
					Desc:     "Упаковка бизнеса в интернете.",
					Includes: []string{"Анализ конкурентов", "Прототип и копирайтинг", "UI Дизайн (Figma)", "Верстка (Tilda/Webflow)"},
					Value:    "Сайт, который конвертирует посетителей в заявки.",
				},
			},
		},
		Process: ProcessSection{
			Sub:   "Этапы",
			Title: "Как мы работаем",
			Steps: []ProcessStep{
				{Num: "01", Title: "Брифинг", Desc: "Обсуждаем цели и требования в Zoom или Google Meet."},
				{Num: "02", Title: "Мудборд", Desc: "Подбираю визуальный стиль, чтобы мы были на одной волне."},
				{Num: "03", Title: "Черновики", Desc: "Создание первых концептов и показ результатов."},
				{Num: "04", Title: "Правки", Desc: "Доработка дизайна. Включено 2-3 круга бесплатных правок."},
				{Num: "05", Title: "Финал", Desc: "Передача всех исходников, готовых к использованию."},
			},
		},
		Inquiry: InquirySection{Title: "Начать проект", Sub: "Расскажите о вашей идее.", Btn: "Отправить", Sending: "Отправка..."},
		Contact: LocaleContact{Location: "Доступен для заказов", Title: "Давайте \nпоработаем.", Tag: "Контакты"},
		Quiz: QuizSection{
			IntroTitle:   "Рассчитать Стоимость",
			IntroDesc:    "Ответьте на 4 вопроса, чтобы получить КП + 10% Скидку на первый заказ.",
			BtnStart:     "Начать расчет",
			FormTitle:    "Последний шаг!",
			FormDesc:     "Оставьте контакты для получения предложения.",
			Placeholders: QuizPlaceholders{Name: "Ваше Имя", Email: "Email", Phone: "Телефон (необязательно)"},
			BtnSubmit:    "Получить результат",
			SuccessTitle: "Получено!",
			SuccessDesc:  "Я проанализирую ответы и скоро отправлю предложение.",
			BtnReset:     "Начать заново",
			Questions: []QuizQuestion{
				{ID: "task", Question: "Какая у вас задача?", Options: []string{"Лого и Фирменный стиль", "3D Анимация / Motion", "Сайт / Лендинг", "Полная упаковка (Бренд + Сайт)", "Другое"}},
				{ID: "ref", Question: "Есть ли референсы?", Options: []string{"Да, все готово", "Есть примеры, которые нравятся", "Пока ничего нет, нужны идеи"}},
				{ID: "budget", Question: "Какой бюджет?", Options: []string{"До 100,000 ₸", "100,000 – 300,000 ₸", "300,000 – 1,000,000 ₸", "Бюджет не ограничен / Обсудим"}},
				{ID: "deadline", Question: "Насколько срочно?", Options: []string{"ASAP (Срочный тариф)", "1-2 Недели", "В течение месяца", "Не спешу"}},
			},
		},
		Pricing: PricingSection{
			Title: "Начать проект",
			Sub:   "Оцените инвестиции",
			Label: "Ваш бюджет",
			Btn:   "Рассчитать сроки",
		},
	}
}

func defaultKAZ() LocaleContent {
	return LocaleContent{
		Nav: NavSection{Works: "Жобалар", Services: "Қызметтер", About: "Мен жайлы", Contact: "Байланыс"},
		Hero: LocaleHero{
			HeadlineFirst:  "ТАЗА",
			HeadlineSecond: "ДИЗАЙН",
			Sub:            "Аға Дизайнер Портфолиосы",
			CTA:            "Жұмыс істейік",
			About:          "Мен жайлы",
			Customers:      "+18k Риза клиенттер",
			NewColl:        "ЖАҢА КОЛЛЕКЦИЯ",
			Join:           "Пікірлес адамдар қауымдастығына қосылыңыз.",
		},
		About: LocaleAbout{
			Tag:   "Мен кіммін",
			Title: "Визионерлік \nОйлау.",
			Desc:  "Мен графикалық дизайнда мол тәжірибем бар. Мен дизайн процесінің барлық кезеңдерін – идеядан бастап жүзеге асыруға дейін орындаймын. Adobe Photoshop, Illustrator, Figma, сонымен қатар 3D Blender және After Effects бағдарламаларын жетік меңгергенмін.",
			Links: defaultLinks(),
			Skills: []Skill{
				{Name: "Adobe Photoshop", Level: 95, Label: "Жетік"},
				{Name: "Adobe Illustrator", Level: 90, Label: "Жетік"},
				{Name: "Figma", Level: 95, Label: "Сарапшы"},
				{Name: "CorelDRAW", Level: 85, Label: "Тәжірибелі"},
				{Name: "Blender 3D", Level: 80, Label: "Орташа"},
				{Name: "After Effects", Level: 75, Label: "Жақсы"},
				{Name: "HTML / CSS", Level: 60, Label: "Базалық"},
			},
		},
		Portfolio: PortfolioSection{
			Title: "Таңдаулы Жобалар",
			Empty: "Бұл санатта әлі жобалар жоқ.",
			View:  "Кейсті қарау",
			Visit: "Сайтқа өту",
		},
		Services: ServicesSection{
			Title: "Қызметтер",
			Sub:   "Қызмет түрлері",
			Packages: []ServicePackage{
				{
					ID:       1,
					Title:    "Бренд-старт",
					Subtitle: "Identity & POS",
					For:      "Стартаптар мен Редизайн",
					Desc:     "Тәжірибеге негізделген визуалды образ жасау.",
					Includes: []string{"Логотип (3 нұсқа)", "Фирмалық стиль", "Гайдлайн (Mini)", "Полиграфия (Визиткалар)"},
					Value:    "жай сурет емес, сатуға дайын құралдар жиынтығы.",
				},
				{
					ID:       2,
					Title:    "Визуализация және Motion",
					Subtitle: "3D & Animation",
					For:      "Тауар бизнесі және Жарнама",
					Desc:     "3D қарапайым 2D дизайнға қарағанда қымбат сатылады.",
					Includes: []string{"3D-моделдеу", "Анимациялық ролик (15-30сек)", "Сторисқа бейімдеу", "Фотореалистичные рендерлер"},
					Feature:  true,
					Value:    "Бәсекелестерден ерекшелендіретін қымбат көрініс.",
				},
				{
					ID:       3,
					Title:    "Кілтке тапсырылатын сайт",
					Subtitle: "Web & Mobile",
					For:      "Сарапшылар мен Қызметтер",
					Desc:     "Бизнесті интернетте қаптау.",
					Includes: []string{"Бәсекелестерді талдау", "Прототип және копирайтинг", "UI Дизайн (Figma)", "Верстка (Tilda/Webflow)"},
					Value:    "Келушілерді клиентке айналдыратын сайт.",
				},
			},
		},
		Process: ProcessSection{
			Sub:   "Кезеңдер",
			Title: "Жұмыс барысы",
			Steps: []ProcessStep{
				{Num: "01", Title: "Брифинг", Desc: "Zoom немесе Google Meet арқылы мақсаттар мен талаптарды талқылау."},
				{Num: "02", Title: "Мудборд", Desc: "Біз бір толқында болуымыз үшін визуалды стильді дайындаймын."},
				{Num: "03", Title: "Нобайлар", Desc: "Алғашқы концепттерді жасау және нәтижелерді көрсету."},
				{Num: "04", Title: "Түзетулер", Desc: "Дизайнды жетілдіру. 2-3 тегін түзету кезеңі кіреді."},
				{Num: "05", Title: "Финал", Desc: "Пайдалануға дайын барлық бастапқы файлдарды тапсыру."},
			},
		},
		Inquiry: InquirySection{Title: "Жоба бастау", Sub: "Идеяңызбен бөлісіңіз.", Btn: "Жіберу", Sending: "Жіберілуде..."},
		Contact: LocaleContact{Location: "Тапсырыс қабылдаймын", Title: "Бірге \nжұмыс істейік.", Tag: "Байланыс"},
		Quiz: QuizSection{
			IntroTitle:   "Құнын есептеу",
			IntroDesc:    "4 сұраққа жауап беріп, Коммерциялық ұсыныс + 10% жеңілдік алыңыз.",
			BtnStart:     "Есептеуді бастау",
			FormTitle:    "Соңғы қадам!",
			FormDesc:     "Ұсыныс алу үшін байланыс нөміріңізді қалдырыңыз.",
			Placeholders: QuizPlaceholders{Name: "Есіміңіз", Email: "Email", Phone: "Телефон (міндетті емес)"},
			BtnSubmit:    "Нәтижені алу",
			SuccessTitle: "Қабылданды!",
			SuccessDesc:  "Мен жауаптарыңызды талдап, жақында ұсыныс жіберемін.",
			BtnReset:     "Қайта бастау",
			Questions: []QuizQuestion{
				{ID: "task", Question: "Негізгі тапсырмаңыз қандай?", Options: []string{"Лого және Бренд стилі", "3D Анимация / Motion", "Сайт / Лендинг", "Толық қаптама (Бренд + Сайт)", "Басқа"}},
				{ID: "ref", Question: "Дайын референстер бар ма?", Options: []string{"Иә, бәри дайын", "Ұнайтын мысалдар бар", "Әзірге ештеңе жоқ"}},
				{ID: "budget", Question: "Бюджет қандай?", Options: []string{"100,000 ₸ дейін", "100,000 – 300,000 ₸", "300,000 – 1,000,000 ₸", "Бюджет шектелмеген / Келісеміз"}},
				{ID: "deadline", Question: "Қаншалықты жедел?", Options: []string{"ASAP (Шұғыл тариф)", "1-2 Апта", "Бір ай ішінде", "Асығыс емес"}},
			},
		},
		Pricing: PricingSection{
			Title: "Жоба бастау",
			Sub:   "Инвестицияны бағалаңыз",
			Label: "Сіздің бюджет",
			Btn:   "Мерзімді есептеу",
		},
	}
}
