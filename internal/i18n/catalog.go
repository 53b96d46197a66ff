package i18n

var translations = map[Language]map[string]string{
	LangEnglish: {
		"app.title":                        "DarijaCode Hub",
		"nav.home":                         "Home",
		"nav.learn":                        "Learn",
		"nav.community":                    "Community",
		"nav.assistant":                    "AI Assistant",
		"nav.projects":                     "Projects",
		"hero.title":                       "Learn programming in your native language",
		"hero.subtitle":                    "Learn coding in your native language with AI-powered assistance",
		"cta.start":                        "Start Learning",
		"cta.join":                         "Join Community",
		"cta.try":                          "Try AI Assistant",
		"section.paths":                    "Learning Paths",
		"section.assistant":                "AI Assistant",
		"roadmap.default_title":            "{path} Roadmap ({level})",
		"roadmap.default_description":      "A personalized {level} roadmap for learning {path} in {language}.",
		"roadmap.default_step_description": "This step focuses on learning {title} and putting it into practice.",
		"roadmap.generated":                "Roadmap generated",
		"roadmap.generated_description":    "Your personalized roadmap is ready. Review and save it.",
		"roadmap.generated_fallback":       "The AI service was unavailable, so a standard roadmap was prepared instead.",
		"roadmap.saved":                    "Roadmap saved",
		"roadmap.saved_description":        "Your roadmap has been saved. Track your progress step by step.",
		"roadmap.error_generation":         "Could not generate the roadmap",
		"roadmap.error_empty":              "The generated roadmap had no steps",
		"roadmap.error_saving":             "Could not save the roadmap",
		"progress.error_saving":            "Failed to update your progress",
		"progress.notes_error_saving":      "Failed to save your notes",
	},
	LangArabic: {
		"app.title":                        "دريجة كود هب",
		"nav.home":                         "الرئيسية",
		"nav.learn":                        "تعلم",
		"nav.community":                    "المجتمع",
		"nav.assistant":                    "مساعد الذكاء",
		"nav.projects":                     "المشاريع",
		"hero.title":                       "تعلم البرمجة بلغتك الأم",
		"hero.subtitle":                    "تعلم البرمجة بلغتك الأم مع مساعدة بالذكاء الاصطناعي",
		"cta.start":                        "ابدأ التعلم",
		"cta.join":                         "انضم للمجتمع",
		"cta.try":                          "جرب مساعد الذكاء",
		"section.paths":                    "مسارات التعلم",
		"section.assistant":                "مساعد الذكاء",
		"roadmap.default_title":            "خارطة طريق {path} ({level})",
		"roadmap.default_description":      "خارطة طريق مخصصة بمستوى {level} لتعلم {path} باللغة {language}.",
		"roadmap.default_step_description": "تركز هذه الخطوة على تعلم {title} وتطبيقه عمليا.",
		"roadmap.generated":                "تم إنشاء خارطة الطريق",
		"roadmap.generated_description":    "خارطة الطريق الخاصة بك جاهزة. راجعها واحفظها.",
		"roadmap.generated_fallback":       "خدمة الذكاء الاصطناعي غير متاحة، لذلك تم إعداد خارطة طريق قياسية.",
		"roadmap.saved":                    "تم حفظ خارطة الطريق",
		"roadmap.saved_description":        "تم حفظ خارطة الطريق. تابع تقدمك خطوة بخطوة.",
		"roadmap.error_generation":         "تعذر إنشاء خارطة الطريق",
		"roadmap.error_empty":              "خارطة الطريق المولدة لا تحتوي على خطوات",
		"roadmap.error_saving":             "تعذر حفظ خارطة الطريق",
		"progress.error_saving":            "فشل تحديث تقدمك",
		"progress.notes_error_saving":      "فشل حفظ ملاحظاتك",
	},
	LangFrench: {
		"app.title":                        "DarijaCode Hub",
		"nav.home":                         "Accueil",
		"nav.learn":                        "Apprendre",
		"nav.community":                    "Communauté",
		"nav.assistant":                    "Assistant IA",
		"nav.projects":                     "Projets",
		"hero.title":                       "Apprendre la programmation dans votre langue natale",
		"hero.subtitle":                    "Apprenez le codage dans votre langue avec assistance IA",
		"cta.start":                        "Commencer",
		"cta.join":                         "Rejoindre",
		"cta.try":                          "Essayer IA",
		"section.paths":                    "Parcours d'Apprentissage",
		"section.assistant":                "Assistant IA",
		"roadmap.default_title":            "Feuille de route {path} ({level})",
		"roadmap.default_description":      "Une feuille de route personnalisée de niveau {level} pour apprendre {path} en {language}.",
		"roadmap.default_step_description": "Cette étape se concentre sur l'apprentissage de {title} et sa mise en pratique.",
		"roadmap.generated":                "Feuille de route générée",
		"roadmap.generated_description":    "Votre feuille de route personnalisée est prête. Vérifiez-la et enregistrez-la.",
		"roadmap.generated_fallback":       "Le service IA était indisponible, une feuille de route standard a été préparée.",
		"roadmap.saved":                    "Feuille de route enregistrée",
		"roadmap.saved_description":        "Votre feuille de route est enregistrée. Suivez votre progression étape par étape.",
		"roadmap.error_generation":         "Impossible de générer la feuille de route",
		"roadmap.error_empty":              "La feuille de route générée ne contient aucune étape",
		"roadmap.error_saving":             "Impossible d'enregistrer la feuille de route",
		"progress.error_saving":            "Échec de la mise à jour de votre progression",
		"progress.notes_error_saving":      "Échec de l'enregistrement de vos notes",
	},
	LangDarija: {
		"app.title":                        "دريجة كود هب",
		"nav.home":                         "الصفحة الرئيسية",
		"nav.learn":                        "تعلم",
		"nav.community":                    "المجتمع",
		"nav.assistant":                    "المساعد الذكي",
		"nav.projects":                     "المشاريع",
		"hero.title":                       "تعلم البرمجة بلغتك الأم",
		"hero.subtitle":                    "تعلم الكود بلغتك مع مساعدة بالذكاء الاصطناعي",
		"cta.start":                        "بدا التعلم",
		"cta.join":                         "دخل للمجتمع",
		"cta.try":                          "جرب المساعد",
		"section.paths":                    "طرق التعلم",
		"section.assistant":                "المساعد الذكي",
		"roadmap.default_title":            "الطريق ديال {path} ({level})",
		"roadmap.default_description":      "خطة مخصصة بمستوى {level} باش تتعلم {path} بالدارجة.",
		"roadmap.default_step_description": "هاد الخطوة كتركز على تعلم {title} والتطبيق ديالو.",
		"roadmap.generated":                "تصاوبات خارطة الطريق",
		"roadmap.generated_description":    "الخطة ديالك وجدات. شوفها وسجلها.",
		"roadmap.generated_fallback":       "خدمة الذكاء الاصطناعي ماخدماتش، تصاوبات ليك خطة قياسية.",
		"roadmap.saved":                    "تسجلات خارطة الطريق",
		"roadmap.saved_description":        "الخطة ديالك تسجلات. تبع التقدم ديالك خطوة بخطوة.",
		"roadmap.error_generation":         "ماقدرناش نصاوبو خارطة الطريق",
		"roadmap.error_empty":              "الخطة اللي تصاوبات ماعندها حتى خطوة",
		"roadmap.error_saving":             "ماقدرناش نسجلو خارطة الطريق",
		"progress.error_saving":            "ماتسجلش التقدم ديالك",
		"progress.notes_error_saving":      "ماتسجلوش الملاحظات ديالك",
	},
}
