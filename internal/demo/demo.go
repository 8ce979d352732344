// Package demo holds the sample content shown on a fresh installation.
// The seeder writes it into an empty store and the client can fall back to it
// when the API is unreachable. Every call returns fresh copies.
package demo

import (
	"time"

	"music_portfolio/internal/domain/models"
)

const img = "https://images.unsplash.com/"

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Publications() []models.Publication {
	items := []models.Publication{
		{
			Title:       "Сценарий осеннего праздника «Золотая осень»",
			Description: "Увлекательный сценарий для старшей группы детского сада с песнями, танцами и играми на осеннюю тематику.",
			Category:    models.CategoryScenarios,
			Image:       img + "photo-1576495350482-942cde5fb23b?w=400",
			Date:        date("2024-09-15"),
		},
		{
			Title:       "Музыкальные игры для развития чувства ритма",
			Description: "Подборка эффективных музыкальных игр и упражнений для развития чувства ритма у дошкольников.",
			Category:    models.CategoryMusic,
			Image:       img + "photo-1579102072861-c31d565c0903?w=400",
			Date:        date("2024-08-22"),
		},
		{
			Title:       "Консультация для родителей: Музыка в жизни ребенка",
			Description: "Рекомендации для родителей о важности музыкального развития детей и как поддержать интерес к музыке дома.",
			Category:    models.CategoryParents,
			Image:       img + "photo-1601339434203-130259102db6?w=400",
			Date:        date("2024-07-10"),
		},
		{
			Title:       "Дыхательная гимнастика в музыкальной деятельности",
			Description: "Методика проведения дыхательной гимнастики с элементами музыкальной деятельности для здоровьесбережения.",
			Category:    models.CategoryHealth,
			Image:       img + "photo-1548206328-a50e7afafc6f?w=400",
			Date:        date("2024-06-05"),
		},
		{
			Title:       "Новогодний утренник «Волшебство Нового года»",
			Description: "Праздничный сценарий с участием Деда Мороза, Снегурочки и сказочных персонажей.",
			Category:    models.CategoryScenarios,
			Image:       img + "photo-1576495350482-942cde5fb23b?w=400",
			Date:        date("2023-12-01"),
		},
	}

	for i := range items {
		items[i].CoverImage = items[i].Image
	}

	return items
}

func Albums() []models.Album {
	return []models.Album{
		{
			Title:  "Осенний праздник 2024",
			Cover:  img + "photo-1576495350482-942cde5fb23b?w=400",
			Photos: []models.Photo{},
			Date:   date("2024-10-15"),
		},
		{
			Title:  "Музыкальные занятия",
			Cover:  img + "photo-1579102072861-c31d565c0903?w=400",
			Photos: []models.Photo{},
			Date:   date("2024-09-20"),
		},
		{
			Title:  "Новогодний утренник",
			Cover:  img + "photo-1601339434203-130259102db6?w=400",
			Photos: []models.Photo{},
			Date:   date("2023-12-25"),
		},
	}
}

func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			Title: "Победитель районного конкурса «Лучший педагог года»",
			Year:  2024,
			Type:  models.AchievementPersonal,
			Icon:  "Trophy",
			Color: "from-yellow-400 to-orange-500",
		},
		{
			Title: "1 место во Всероссийском конкурсе методических разработок",
			Year:  2023,
			Type:  models.AchievementProfessional,
			Icon:  "Award",
			Color: "from-blue-400 to-purple-500",
		},
		{
			Title: "Благодарность от Министерства образования",
			Year:  2023,
			Type:  models.AchievementPersonal,
			Icon:  "Star",
			Color: "from-pink-400 to-red-500",
		},
		{
			Title: "Участие в методическом объединении",
			Year:  2024,
			Type:  models.AchievementTeaching,
			Icon:  "Users",
			Color: "text-blue-500",
		},
	}
}

func Portfolio() []models.PortfolioItem {
	items := []models.PortfolioItem{
		{
			Title:        "Диплом победителя конкурса «Лучший педагог года 2024»",
			Organization: "Департамент образования города Москвы",
			Category:     models.PortfolioDiploma,
			Image:        img + "photo-1715000968071-e3b0068c718d?w=400",
			Date:         date("2024-05-20"),
		},
		{
			Title:        "Сертификат участника Всероссийской конференции",
			Organization: "Министерство просвещения РФ",
			Category:     models.PortfolioCertificate,
			Image:        img + "photo-1715000968071-e3b0068c718d?w=400",
			Date:         date("2023-11-15"),
		},
		{
			Title:        "Благодарственное письмо за организацию праздников",
			Organization: "Администрация детского сада",
			Category:     models.PortfolioGratitude,
			Date:         date("2023-06-01"),
		},
	}

	for i := range items {
		items[i].ImageURL = items[i].Image
	}

	return items
}

func Reviews() []models.Review {
	return []models.Review{
		{
			Author: "Анна Петровна",
			Role:   "Мама воспитанника",
			Text:   "Елена Юрьевна - замечательный педагог! Моя дочка с радостью идет на музыкальные занятия.",
			Rating: 5,
			Status: models.ReviewApproved,
			Likes:  12,
			Date:   date("2024-10-10"),
		},
		{
			Author: "Мария Сергеевна",
			Role:   "Воспитатель",
			Text:   "Работать с Еленой Юрьевной одно удовольствие! Профессионал своего дела.",
			Rating: 5,
			Status: models.ReviewApproved,
			Likes:  8,
			Date:   date("2024-09-25"),
		},
		{
			Author: "Ольга Викторовна",
			Role:   "Мама воспитанника",
			Text:   "Мой сын стал гораздо увереннее в себе после занятий с Еленой Юрьевной.",
			Rating: 5,
			Status: models.ReviewApproved,
			Likes:  15,
			Date:   date("2024-08-15"),
		},
	}
}

func Audio() []models.AudioTrack {
	return []models.AudioTrack{
		{Title: "Осенняя песенка", Artist: "Музыкальное занятие", Category: "Детские песни", Duration: "2:45"},
		{Title: "Веселая зарядка", Artist: "Ритмика", Category: "Физминутки", Duration: "3:12"},
		{Title: "Колыбельная", Artist: "Релаксация", Category: "Успокаивающая музыка", Duration: "4:30"},
	}
}

func Videos() []models.Video {
	return []models.Video{
		{
			Title:       "Осенний праздник 2024 - Полная запись",
			Description: "Выступление детей старшей группы на осеннем празднике",
			Category:    "Праздники",
			Thumbnail:   img + "photo-1576495350482-942cde5fb23b?w=400",
			Duration:    "15:30",
			Views:       342,
			Date:        date("2024-10-15"),
		},
		{
			Title:       "Музыкальное занятие: Развитие ритма",
			Description: "Методика проведения занятия по развитию чувства ритма",
			Category:    "Занятия",
			Thumbnail:   img + "photo-1579102072861-c31d565c0903?w=400",
			Duration:    "8:45",
			Views:       215,
			Date:        date("2024-09-20"),
		},
	}
}

func Pages() []models.Page {
	return []models.Page{
		{ID: models.PageHome, Title: "Главная страница", ImageURL: models.DefaultPageImage},
		{ID: models.PageAbout, Title: "О себе", ImageURL: models.DefaultPageImage},
	}
}
