package content

import "strings"

// NavItem is one entry of the navigation bar, in page order.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Sections returns the page sections that have something to show. The hero
// and contact blocks are always present.
func Sections(s *Site) []NavItem {
	items := []NavItem{{ID: "hero", Label: "Home"}}
	if len(s.Skills) > 0 {
		items = append(items, NavItem{ID: "skills", Label: "Skills"})
	}
	if len(s.Projects) > 0 {
		items = append(items, NavItem{ID: "projects", Label: "Projects"})
	}
	if len(s.Experience) > 0 {
		items = append(items, NavItem{ID: "experience", Label: "Experience"})
	}
	if len(s.Achievements) > 0 {
		items = append(items, NavItem{ID: "achievements", Label: "Achievements"})
	}
	if len(s.Certifications) > 0 {
		items = append(items, NavItem{ID: "certifications", Label: "Certifications"})
	}
	return append(items, NavItem{ID: "contact", Label: "Contact"})
}

// ContactMethod is a card in the contact section.
type ContactMethod struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Href     string `json:"href"`
	External bool   `json:"external"`
	Copyable bool   `json:"copyable"`
}

// ContactMethods lists the contact cards for p, skipping unset channels.
func ContactMethods(p Profile) []ContactMethod {
	var out []ContactMethod
	if email := strings.TrimSpace(p.Contacts.Email); email != "" {
		out = append(out, ContactMethod{
			Label:    "Email",
			Value:    email,
			Href:     "mailto:" + email,
			Copyable: true,
		})
	}
	if p.Contacts.GitHub != "" {
		out = append(out, ContactMethod{
			Label:    "GitHub",
			Value:    p.GitHubHandle(),
			Href:     p.Contacts.GitHub,
			External: true,
		})
	}
	if p.Contacts.LinkedIn != "" {
		out = append(out, ContactMethod{
			Label:    "LinkedIn",
			Value:    "Connect on LinkedIn",
			Href:     p.Contacts.LinkedIn,
			External: true,
		})
	}
	return out
}
