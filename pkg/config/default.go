package config

// Default returns the curated configuration the portfolio shipped with.
// It is used when no config file exists.
func Default() *Config {
	web := []string{"HTML5", "CSS3", "JavaScript"}
	tags := func(extra ...string) []string {
		return append(append([]string(nil), web...), extra...)
	}

	c := &Config{
		Owner: "Nour-ibrahem30",
		Featured: []string{
			"Portflio-3d",
			"Elgokh",
			"Creative-child",
			"intiative_Website_Value",
			"SBS-Website-Clone",
			"Green-studio",
			"Family",
			"VivaDecor",
		},
		Overrides: map[string]Override{
			"Portflio-3d": {
				DisplayName:       "Portfolio Website 3D",
				CustomDescription: "Modern 3D portfolio website with interactive animations, built with React, Vite, and Tailwind CSS. Features dynamic GitHub API integration and smooth GSAP animations.",
				Featured:          true,
				LiveURL:           "https://nour-ibrahem30.github.io/Portflio-3d/",
				Tags:              []string{"React", "Vite", "Tailwind CSS", "GSAP", "Framer Motion"},
				Highlight:         true,
			},
			"Elgokh": {
				DisplayName:       "Elgokh",
				CustomDescription: "Professional website project showcasing modern web development techniques and responsive design.",
				Featured:          true,
				Tags:              tags("Responsive"),
				Highlight:         true,
			},
			"Creative-child": {
				DisplayName:       "Creative Child",
				CustomDescription: "Creative and colorful website designed for children, featuring interactive elements and engaging UI.",
				Featured:          true,
				Tags:              tags("UI/UX"),
				Highlight:         true,
			},
			"intiative_Website_Value": {
				DisplayName:       "Initiative Website - Value Marketing",
				CustomDescription: "Custom React website built for Value Marketing company. Features modern design, responsive layout, and smooth animations.",
				Featured:          true,
				Tags:              []string{"React", "JavaScript", "CSS3", "Responsive"},
				Highlight:         true,
			},
			"SBS-Website-Clone": {
				DisplayName:       "Shabab Betesaed Shabab Website",
				CustomDescription: "Complete website clone for Shabab Betesaed Shabab organization. Built with React, TypeScript, and modern web technologies.",
				Featured:          true,
				Tags:              []string{"React", "TypeScript", "CSS3", "Volunteer"},
				Highlight:         true,
			},
			"Green-studio": {
				DisplayName:       "Green Studio",
				CustomDescription: "Elegant studio website with modern design and smooth animations. Features portfolio showcase and contact forms.",
				Featured:          true,
				Tags:              tags("Design"),
				Highlight:         true,
			},
			"Family": {
				DisplayName:       "Family",
				CustomDescription: "Family-oriented website project with warm design and user-friendly interface.",
				Featured:          true,
				Tags:              tags("Responsive"),
				Highlight:         true,
			},
			"VivaDecor": {
				DisplayName:       "Viva Decor",
				CustomDescription: "Interior design showcase website built during Web Master internship. Features elegant design and image galleries.",
				Featured:          true,
				Tags:              tags("Design"),
				Highlight:         true,
			},
			"jadoo": {
				DisplayName:       "Jadoo Travel Website",
				CustomDescription: "Travel booking website built during Web Master internship. Features responsive design and interactive UI.",
				Tags:              tags("Responsive"),
			},
			"Kalaly-Project": {
				DisplayName:       "Kalaly Project",
				CustomDescription: "E-commerce project built during Web Master internship. Includes product listings and shopping cart functionality.",
				Tags:              tags("E-commerce"),
			},
			"Travel": {
				DisplayName:       "Travel Website",
				CustomDescription: "Tourism website built during Web Master internship. Includes destination listings and booking features.",
				Tags:              tags("Tourism"),
			},
		},
		Display: Display{
			ShowArchived:    false,
			DefaultTab:      "featured",
			ProjectsPerPage: DefaultProjectsPerPage,
			SortOtherBy:     SortCreated,
			SortOrder:       OrderDesc,
		},
		Fallback: []Fallback{{
			Name:        "Portfolio Website",
			Description: "Personal portfolio website built with React, Vite, and Tailwind CSS",
			HTMLURL:     "https://github.com/Nour-ibrahem30",
			Language:    "JavaScript",
			Image:       "https://opengraph.githubassets.com/1/Nour-ibrahem30/Portflio-3d",
			Readme:      "Personal portfolio website showcasing my projects and skills as a Front-End Developer.",
		}},
	}

	c.SetOverrideOrder(
		"Portflio-3d", "Elgokh", "Creative-child", "intiative_Website_Value",
		"SBS-Website-Clone", "Green-studio", "Family", "VivaDecor",
		"jadoo", "Kalaly-Project", "Travel",
	)
	c.SetDefaults()
	return c
}
