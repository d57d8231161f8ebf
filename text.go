package main

// LegalSection is one headed block of the privacy or terms page.
type LegalSection struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

const legalUpdated = "October 30, 2025"

var (
	PrivacySections = []LegalSection{
		{
			Paragraphs: []string{`This Privacy Policy explains how I collect, use, and protect your information
			when you visit this website.`},
		},
		{
			Heading: "Information I Collect",
			Items: []string{
				"Basic analytics data (page views, browser type), stored with hashed network addresses",
				"Information you provide when contacting me via email",
				"A session cookie for the site administrator only",
			},
		},
		{
			Heading: "How I Use Your Information",
			Items: []string{
				"Improve website performance and user experience",
				"Respond to your inquiries and communications",
				"Analyze website traffic and usage patterns",
			},
		},
		{
			Heading: "Do Not Track",
			Paragraphs: []string{`If your browser sends a Do Not Track signal, no analytics record is
			written for your visit. Analytics records are deleted once they pass the retention period.`},
		},
		{
			Heading: "Data Security",
			Paragraphs: []string{`I take reasonable measures to protect your personal information from
			unauthorized access, disclosure, or misuse. However, no method of transmission over the
			internet is 100% secure.`},
		},
		{
			Heading: "Your Rights",
			Items: []string{
				"Request access to your personal data",
				"Request correction or deletion of your data",
				"Opt-out of data collection where applicable",
			},
		},
		{
			Heading: "Changes to This Policy",
			Paragraphs: []string{`I may update this Privacy Policy from time to time. Any changes will be
			posted on this page with an updated revision date.`},
		},
	}

	TermsSections = []LegalSection{
		{
			Heading: "Acceptance of Terms",
			Paragraphs: []string{`By accessing and using this portfolio website, you accept and agree to be
			bound by the terms and provisions of this agreement. If you do not agree to these terms,
			please do not use this website.`},
		},
		{
			Heading: "Use License",
			Paragraphs: []string{`Permission is granted to temporarily view the materials on this website
			for personal, non-commercial use only. This is the grant of a license, not a transfer of
			title, and under this license you may not:`},
			Items: []string{
				"Modify or copy the materials",
				"Use the materials for any commercial purpose",
				"Remove any copyright or other proprietary notations from the materials",
			},
		},
		{
			Heading: "Disclaimer",
			Paragraphs: []string{`The materials on this website are provided on an 'as is' basis. I make no
			warranties, expressed or implied, and hereby disclaim all other warranties including,
			without limitation, implied warranties or conditions of merchantability, fitness for a
			particular purpose, or non-infringement of intellectual property.`},
		},
		{
			Heading: "Limitations",
			Paragraphs: []string{`In no event shall the owner of this website be liable for any damages
			(including, without limitation, damages for loss of data or profit, or due to business
			interruption) arising out of the use or inability to use the materials on this website.`},
		},
		{
			Heading: "Links",
			Paragraphs: []string{`I have not reviewed all of the sites linked to this website and am not
			responsible for the contents of any such linked site. The inclusion of any link does not
			imply endorsement by me. Use of any such linked website is at the user's own risk.`},
		},
		{
			Heading: "Modifications",
			Paragraphs: []string{`I may revise these terms of service at any time without notice. By using
			this website, you are agreeing to be bound by the then-current version of these terms.`},
		},
	}
)
