// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

// Package settings implements the site-settings singleton.
//
// Settings drive the public shell of the site (hero, footer, SEO, social
// links). Like the about page there is exactly one document, bootstrapped
// with defaults on first read.
package settings

import (
	"time"

	"github.com/creasty/defaults"

	"github.com/markrahimi/folio/pkg/i18n"
)

// SocialLinks holds the profile URLs shown in the header and footer.
// Empty values hide the corresponding icon.
type SocialLinks struct {
	GitHub    string `json:"github"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
}

// Settings is the full bilingual singleton document.
type Settings struct {
	SiteName        i18n.Text `json:"siteName"`
	SiteDescription i18n.Text `json:"siteDescription"`

	FullName string    `json:"fullName" default:"Mark Rahimi"`
	Role     i18n.Text `json:"role"`
	Bio      i18n.Text `json:"bio"`

	Logo         string `json:"logo" default:"/logo.png"`
	ProfileImage string `json:"profileImage" default:"/profile.jpg"`
	Favicon      string `json:"favicon" default:"/favicon.ico"`

	Email    string    `json:"email" default:"admin@markrahimi.com"`
	Phone    string    `json:"phone"`
	Location i18n.Text `json:"location"`
	Address  i18n.Text `json:"address"`

	SocialLinks SocialLinks `json:"socialLinks"`

	FooterText    i18n.Text `json:"footerText"`
	CopyrightText i18n.Text `json:"copyrightText"`

	HeroGreeting i18n.Text `json:"heroGreeting"`
	HeroTitle    i18n.Text `json:"heroTitle"`
	HeroSubtitle i18n.Text `json:"heroSubtitle"`
	HeroBadges   []string  `json:"heroBadges"`

	ResumeURL string `json:"resumeUrl" default:"/cv.pdf"`

	MetaKeywords    i18n.TextList `json:"metaKeywords"`
	MetaDescription i18n.Text     `json:"metaDescription"`

	GoogleAnalyticsID  string `json:"googleAnalyticsId,omitempty"`
	GoogleTagManagerID string `json:"googleTagManagerId,omitempty"`
	CustomHeadScripts  string `json:"customHeadScripts,omitempty"`
	CustomBodyScripts  string `json:"customBodyScripts,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetDefaults fills the bilingual and list fields the `default` tag cannot
// express. Called by [defaults.Set] after the tagged fields are applied.
func (s *Settings) SetDefaults() {
	fill := func(target *i18n.Text, en, fr string) {
		if target.EN == "" && target.FR == "" {
			*target = i18n.NewText(en, fr)
		}
	}

	fill(&s.SiteName, "Mark Rahimi", "Mark Rahimi")
	fill(&s.SiteDescription, "Full-Stack Developer & Software Engineer", "Développeur Full-Stack & Ingénieur Logiciel")
	fill(&s.Role, "Full-Stack Developer", "Développeur Full-Stack")
	fill(&s.FooterText, "Built with Go & Postgres", "Créé avec Go & Postgres")
	fill(&s.CopyrightText, "All rights reserved", "Tous droits réservés")
	fill(&s.HeroGreeting, "Welcome", "Bienvenue")
	fill(&s.HeroTitle, "I'm Mark Rahimi", "Je suis Mark Rahimi")
	fill(&s.HeroSubtitle, "Full-Stack Developer & Software Engineer", "Développeur Full-Stack & Ingénieur Logiciel")

	if s.HeroBadges == nil {
		s.HeroBadges = []string{"Go", "Postgres", "Next.js", "Redis"}
	}
	if s.MetaKeywords.EN == nil {
		s.MetaKeywords.EN = []string{}
	}
	if s.MetaKeywords.FR == nil {
		s.MetaKeywords.FR = []string{}
	}
}

// Defaults builds the document a fresh site boots with.
func Defaults() *Settings {
	s := &Settings{}
	// Set cannot fail here: every tag is a plain string on an exported field.
	_ = defaults.Set(s)
	return s
}

// Input is the allow-listed write payload for PUT.
type Input struct {
	SiteName        *i18n.Text `json:"siteName"`
	SiteDescription *i18n.Text `json:"siteDescription"`

	FullName *string    `json:"fullName"`
	Role     *i18n.Text `json:"role"`
	Bio      *i18n.Text `json:"bio"`

	Logo         *string `json:"logo"`
	ProfileImage *string `json:"profileImage"`
	Favicon      *string `json:"favicon"`

	Email    *string    `json:"email"`
	Phone    *string    `json:"phone"`
	Location *i18n.Text `json:"location"`
	Address  *i18n.Text `json:"address"`

	SocialLinks *SocialLinks `json:"socialLinks"`

	FooterText    *i18n.Text `json:"footerText"`
	CopyrightText *i18n.Text `json:"copyrightText"`

	HeroGreeting *i18n.Text `json:"heroGreeting"`
	HeroTitle    *i18n.Text `json:"heroTitle"`
	HeroSubtitle *i18n.Text `json:"heroSubtitle"`
	HeroBadges   *[]string  `json:"heroBadges"`

	ResumeURL *string `json:"resumeUrl"`

	MetaKeywords    *i18n.TextList `json:"metaKeywords"`
	MetaDescription *i18n.Text     `json:"metaDescription"`

	GoogleAnalyticsID  *string `json:"googleAnalyticsId"`
	GoogleTagManagerID *string `json:"googleTagManagerId"`
	CustomHeadScripts  *string `json:"customHeadScripts"`
	CustomBodyScripts  *string `json:"customBodyScripts"`
}

func (in *Input) apply(s *Settings) {
	if in.SiteName != nil {
		s.SiteName = *in.SiteName
	}
	if in.SiteDescription != nil {
		s.SiteDescription = *in.SiteDescription
	}
	if in.FullName != nil {
		s.FullName = *in.FullName
	}
	if in.Role != nil {
		s.Role = *in.Role
	}
	if in.Bio != nil {
		s.Bio = *in.Bio
	}
	if in.Logo != nil {
		s.Logo = *in.Logo
	}
	if in.ProfileImage != nil {
		s.ProfileImage = *in.ProfileImage
	}
	if in.Favicon != nil {
		s.Favicon = *in.Favicon
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Location != nil {
		s.Location = *in.Location
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.SocialLinks != nil {
		s.SocialLinks = *in.SocialLinks
	}
	if in.FooterText != nil {
		s.FooterText = *in.FooterText
	}
	if in.CopyrightText != nil {
		s.CopyrightText = *in.CopyrightText
	}
	if in.HeroGreeting != nil {
		s.HeroGreeting = *in.HeroGreeting
	}
	if in.HeroTitle != nil {
		s.HeroTitle = *in.HeroTitle
	}
	if in.HeroSubtitle != nil {
		s.HeroSubtitle = *in.HeroSubtitle
	}
	if in.HeroBadges != nil {
		s.HeroBadges = *in.HeroBadges
	}
	if in.ResumeURL != nil {
		s.ResumeURL = *in.ResumeURL
	}
	if in.MetaKeywords != nil {
		s.MetaKeywords = *in.MetaKeywords
	}
	if in.MetaDescription != nil {
		s.MetaDescription = *in.MetaDescription
	}
	if in.GoogleAnalyticsID != nil {
		s.GoogleAnalyticsID = *in.GoogleAnalyticsID
	}
	if in.GoogleTagManagerID != nil {
		s.GoogleTagManagerID = *in.GoogleTagManagerID
	}
	if in.CustomHeadScripts != nil {
		s.CustomHeadScripts = *in.CustomHeadScripts
	}
	if in.CustomBodyScripts != nil {
		s.CustomBodyScripts = *in.CustomBodyScripts
	}
}
