// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package about implements the about-page singleton.
//
// There is exactly one About document per site. The first read bootstraps it
// with the default content so the page never renders empty.
package about

import (
	"time"

	"github.com/markrahimi/folio/pkg/i18n"
)

// Stat is a headline figure with a bilingual label and a plain value ("4+").
type Stat struct {
	Label i18n.Text `json:"label"`
	Value string    `json:"value"`
}

// LocalizedStat is a stat whose value is itself bilingual (the location).
type LocalizedStat struct {
	Label i18n.Text `json:"label"`
	Value i18n.Text `json:"value"`
}

// Stats is the fixed set of headline figures on the about page.
type Stats struct {
	Experience   Stat          `json:"experience"`
	Projects     Stat          `json:"projects"`
	Technologies Stat          `json:"technologies"`
	Location     LocalizedStat `json:"location"`
}

// About is the full bilingual singleton document.
type About struct {
	Title               i18n.Text     `json:"title"`
	ProfessionalSummary i18n.Text     `json:"professionalSummary"`
	Description         i18n.Text     `json:"description"`
	Description2        i18n.Text     `json:"description2"`
	Description3        i18n.Text     `json:"description3"`
	WhatIDo             i18n.Text     `json:"whatIDo"`
	WhatIDoList         i18n.TextList `json:"whatIDoList"`
	Stats               Stats         `json:"stats"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// PublicStat is a stat collapsed to one language.
type PublicStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PublicStats mirrors [Stats] in one language.
type PublicStats struct {
	Experience   PublicStat `json:"experience"`
	Projects     PublicStat `json:"projects"`
	Technologies PublicStat `json:"technologies"`
	Location     PublicStat `json:"location"`
}

// Public is the single-language projection.
type Public struct {
	Title               string      `json:"title"`
	ProfessionalSummary string      `json:"professionalSummary"`
	Description         string      `json:"description"`
	Description2        string      `json:"description2"`
	Description3        string      `json:"description3"`
	WhatIDo             string      `json:"whatIDo"`
	WhatIDoList         []string    `json:"whatIDoList"`
	Stats               PublicStats `json:"stats"`
}

// Localize collapses every bilingual field to the requested language.
func (a *About) Localize(lang i18n.Lang) *Public {
	return &Public{
		Title:               a.Title.In(lang),
		ProfessionalSummary: a.ProfessionalSummary.In(lang),
		Description:         a.Description.In(lang),
		Description2:        a.Description2.In(lang),
		Description3:        a.Description3.In(lang),
		WhatIDo:             a.WhatIDo.In(lang),
		WhatIDoList:         a.WhatIDoList.In(lang),
		Stats: PublicStats{
			Experience:   PublicStat{Label: a.Stats.Experience.Label.In(lang), Value: a.Stats.Experience.Value},
			Projects:     PublicStat{Label: a.Stats.Projects.Label.In(lang), Value: a.Stats.Projects.Value},
			Technologies: PublicStat{Label: a.Stats.Technologies.Label.In(lang), Value: a.Stats.Technologies.Value},
			Location:     PublicStat{Label: a.Stats.Location.Label.In(lang), Value: a.Stats.Location.Value.In(lang)},
		},
	}
}

// Input is the allow-listed write payload for PUT.
type Input struct {
	Title               *i18n.Text     `json:"title"`
	ProfessionalSummary *i18n.Text     `json:"professionalSummary"`
	Description         *i18n.Text     `json:"description"`
	Description2        *i18n.Text     `json:"description2"`
	Description3        *i18n.Text     `json:"description3"`
	WhatIDo             *i18n.Text     `json:"whatIDo"`
	WhatIDoList         *i18n.TextList `json:"whatIDoList"`
	Stats               *Stats         `json:"stats"`
}

func (in *Input) apply(a *About) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.ProfessionalSummary != nil {
		a.ProfessionalSummary = *in.ProfessionalSummary
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Description2 != nil {
		a.Description2 = *in.Description2
	}
	if in.Description3 != nil {
		a.Description3 = *in.Description3
	}
	if in.WhatIDo != nil {
		a.WhatIDo = *in.WhatIDo
	}
	if in.WhatIDoList != nil {
		a.WhatIDoList = *in.WhatIDoList
	}
	if in.Stats != nil {
		a.Stats = *in.Stats
	}
}

// Defaults is the content a fresh site boots with.
func Defaults() *About {
	return &About{
		Title:               i18n.NewText("About Me", "À Propos"),
		ProfessionalSummary: i18n.NewText("Professional Summary", "Résumé Professionnel"),
		Description: i18n.NewText(
			"I'm a passionate Full Stack Developer with expertise in building scalable web applications and AI-powered solutions.",
			"Je suis un développeur Full Stack passionné avec une expertise dans la création d'applications web évolutives et de solutions alimentées par l'IA.",
		),
		Description2: i18n.NewText(
			"With 4+ years of experience, I specialize in Python, FastAPI, Next.js, and modern web technologies.",
			"Avec plus de 4 ans d'expérience, je me spécialise en Python, FastAPI, Next.js et technologies web modernes.",
		),
		Description3: i18n.NewText(
			"I'm dedicated to creating innovative solutions that make a real impact.",
			"Je suis dévoué à créer des solutions innovantes qui ont un impact réel.",
		),
		WhatIDo: i18n.NewText("What I Do", "Ce Que Je Fais"),
		WhatIDoList: i18n.TextList{
			EN: []string{
				"Full Stack Web Development",
				"AI & Machine Learning Solutions",
				"RESTful & GraphQL API Design",
				"Cloud Infrastructure & DevOps",
				"Database Design & Optimization",
			},
			FR: []string{
				"Développement Web Full Stack",
				"Solutions IA & Apprentissage Automatique",
				"Conception d'API RESTful & GraphQL",
				"Infrastructure Cloud & DevOps",
				"Conception et Optimisation de Bases de Données",
			},
		},
		Stats: Stats{
			Experience:   Stat{Label: i18n.NewText("Years Experience", "Années d'Expérience"), Value: "4+"},
			Projects:     Stat{Label: i18n.NewText("Projects Completed", "Projets Complétés"), Value: "20+"},
			Technologies: Stat{Label: i18n.NewText("Technologies", "Technologies"), Value: "15+"},
			Location: LocalizedStat{
				Label: i18n.NewText("Location", "Localisation"),
				Value: i18n.NewText("Toronto, Canada", "Toronto, Canada"),
			},
		},
	}
}
