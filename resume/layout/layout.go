// Package layout turns a normalized resume into an ordered, format-neutral
// sequence of content blocks.
package layout

import (
	"slices"
	"strings"

	"resume-renderer/resume/model"
)

// Kind identifies the role of a block.
type Kind int

const (
	KindTitle Kind = iota
	KindContactLine
	KindSectionHeading
	KindBody
	KindEmphasis
	KindBulletList
	KindDateLine
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContactLine:
		return "contact"
	case KindSectionHeading:
		return "heading"
	case KindBody:
		return "body"
	case KindEmphasis:
		return "emphasis"
	case KindBulletList:
		return "bullets"
	case KindDateLine:
		return "dates"
	default:
		return "unknown"
	}
}

// Block is one abstract unit of content.
type Block struct {
	Kind Kind
	Text string
	// Lead is the prefix of Text that writers render strong. Emphasis only.
	Lead  string
	Items []string
}

// Rest returns the part of Text that follows Lead.
func (b Block) Rest() string {
	return strings.TrimPrefix(b.Text, b.Lead)
}

const (
	HeadingSummary    = "Professional Summary"
	HeadingExperience = "Work Experience"
	HeadingEducation  = "Education"
	HeadingSkills     = "Skills"

	contactSeparator = " | "
	dateSeparator    = " - "
)

// Assemble builds the block sequence for a resume. Section order is fixed:
// title and contact, summary, work experience, education, skills.
func Assemble(in model.ResumeInput) []Block {
	blocks := []Block{{Kind: KindTitle, Text: in.Name}}

	if contact := joinNonEmpty(contactSeparator, in.Email, in.Phone, in.LinkedIn); contact != "" {
		blocks = append(blocks, Block{Kind: KindContactLine, Text: contact})
	}

	if in.Summary != "" {
		blocks = append(blocks,
			heading(HeadingSummary),
			Block{Kind: KindBody, Text: in.Summary},
		)
	}

	blocks = append(blocks, experienceBlocks(in.WorkExperiences)...)
	blocks = append(blocks, educationBlocks(in.Educations)...)

	if len(in.Skills) > 0 {
		blocks = append(blocks,
			heading(HeadingSkills),
			Block{Kind: KindBulletList, Items: slices.Clone(in.Skills)},
		)
	}

	return blocks
}

func experienceBlocks(items []model.WorkExperience) []Block {
	var out []Block
	for _, job := range items {
		if job.JobTitle == "" {
			continue
		}
		if len(out) == 0 {
			out = append(out, heading(HeadingExperience))
		}

		out = append(out, emphasis(job.JobTitle, job.Company))

		info := job.DateFrom + dateSeparator + job.EndLabel()
		if job.Location != "" {
			info += contactSeparator + job.Location
		}
		out = append(out, Block{Kind: KindDateLine, Text: info})

		if bullets := slices.Collect(model.Bullets(job.JobDescription)); len(bullets) > 0 {
			out = append(out, Block{Kind: KindBulletList, Items: bullets})
		}
	}
	return out
}

func educationBlocks(items []model.Education) []Block {
	var out []Block
	for _, edu := range items {
		if edu.Degree == "" {
			continue
		}
		if len(out) == 0 {
			out = append(out, heading(HeadingEducation))
		}

		out = append(out, emphasis(edu.Degree, edu.School))

		if edu.DateFrom != "" || edu.EndLabel() != "" {
			out = append(out, Block{Kind: KindDateLine, Text: edu.DateFrom + dateSeparator + edu.EndLabel()})
		}
	}
	return out
}

func heading(text string) Block {
	return Block{Kind: KindSectionHeading, Text: text}
}

func emphasis(lead, rest string) Block {
	return Block{Kind: KindEmphasis, Text: lead + " at " + rest, Lead: lead}
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
