package core

import (
	"fmt"
	"strings"

	"github.com/pathfinder-ke/pathfinder/schema"
)

// GenerateRationale produces the three-layer explanation for a recommendation.
// The wording branches on the department status across five fixed templates;
// there is no randomness, so identical inputs always yield identical text.
// Eligible and Unknown share a template pair that switches on whether any of
// the student's own words matched the field taxonomy.
func GenerateRationale(status schema.DeptStatus, field string, interestScore float64, jobCount int, primarySkill string, matchedKeywords, skills []string) schema.Rationale {
	if primarySkill == "" {
		primarySkill = "specialized techniques"
	}

	switch status {
	case schema.DeptNotEligible:
		return schema.Rationale{
			Academic: fmt.Sprintf(
				"Academic Reality Check: Although your interests align %.0f%% with %s concepts, your current exam profile does not yet meet the Degree entry threshold. "+
					"Pursuing this path directly through a Degree is currently blocked, but your passion suggests you should consider technical foundations first.",
				interestScore*100, field),
			Market: fmt.Sprintf(
				"Strategic Pivot: With %d jobs in this sector, the demand is real. However, to access these roles, you'll need to focus on skill-based certifications "+
					"rather than traditional academic routes until you qualify for advanced bridging.",
				jobCount),
			Trajectory: fmt.Sprintf(
				"Alternative Entry: Many sector leaders started with technical certificates. Focus on mastering %s via short courses to enter the market while planning your academic progression.",
				primarySkill),
		}

	case schema.DeptEligibleDiploma:
		return schema.Rationale{
			Academic: fmt.Sprintf(
				"Practical Path Forward: You qualify for a Diploma in %s. This lets you gain industry skills faster than a degree student, and you have the foundation to excel in %s at a technical level.",
				field, primarySkill),
			Market: fmt.Sprintf(
				"Fast-Track to Employment: The market for Diploma holders in %s is strong and employers value hands-on expertise. "+
					"With %d roles active, your specialized technical training will make you a prime candidate for operational roles.",
				field, jobCount),
			Trajectory: "The Ladder Strategy: Use your Diploma as a launchpad. After working in the field, most universities allow you to enroll in a Degree via credit transfer, often shortening the degree path significantly.",
		}

	case schema.DeptAspirational:
		return schema.Rationale{
			Academic: fmt.Sprintf(
				"Narrow Academic Gap: You are very close to qualifying for a Degree in %s. Your interest match is excellent, and you likely only need a single grade improvement or a short pre-university bridge to unlock this path.",
				field),
			Market: fmt.Sprintf(
				"High Stakes Match: Because your interest in %s is so strong, it is worth the extra effort to bridge the academic gap. The %d vacancies represent a future where your passion meets significant economic opportunity.",
				field, jobCount),
			Trajectory: fmt.Sprintf(
				"Persistence Strategy: Consider a bridging course in your weakest cluster subject. This small investment now could unlock a %s career that aligns with your highest cognitive strengths.",
				field),
		}

	default: // Eligible or Unknown
		var academic string
		if len(matchedKeywords) > 0 {
			shown := matchedKeywords
			if len(shown) > 3 {
				shown = shown[:3]
			}
			academic = fmt.Sprintf(
				"Direct Academic Alignment: Your deep interest in %s makes you a perfect fit for %s modules like %s.",
				strings.Join(shown, ", "), field, primarySkill)
		} else {
			academic = fmt.Sprintf(
				"Holistic Fit: Your conceptual approach aligns with the analytical framework of %s, particularly for mastering %s.",
				field, primarySkill)
		}
		return schema.Rationale{
			Academic: academic,
			Market: fmt.Sprintf(
				"Market Symbiosis: We found %d active vacancies in %s. Your skills in %s will be in high demand.",
				jobCount, field, skillAt(skills, 1, "industry tools")),
			Trajectory: fmt.Sprintf(
				"Strategic Growth: This path offers a clear bridge to leadership, leveraging your capacity for %s.",
				skillAt(skills, 2, "strategic thinking")),
		}
	}
}

// MarketOutlook returns the deterministic market commentary for a job count.
func MarketOutlook(jobCount int) string {
	switch {
	case jobCount > 30:
		return "Excellent. The industry is rapidly expanding with high volumes of entry-level and senior roles."
	case jobCount > 0:
		return "Stable. There is a consistent need for professionals, providing reliable career progression."
	default:
		return "Competitive/Specialized. Roles may require higher specialization or are emerging in the local market."
	}
}

// WhyBest explains the ranking strategy that put a field near the top.
// The branch order mirrors the weighting policy precedence: explicit passion
// or market presets first, then interest-shape heuristics, then score gaps.
func WhyBest(alpha, beta float64, mixedInterest, inTopScores bool, interestScore, demandScore float64, jobCount int, field string) string {
	switch {
	case alpha > 0.8:
		return "Passion-First Priority: This is ranked highly because it matches your intrinsic motivations."
	case beta > 0.6:
		return fmt.Sprintf("Market-First Priority: This sector is prioritized for job security with %d current openings.", jobCount)
	case mixedInterest && inTopScores:
		return fmt.Sprintf("Interdisciplinary Fit: Since you have diverse interests, %s is a great anchor.", field)
	case interestScore > demandScore+0.3:
		return "Personal Strength: Your passion for this field significantly outweighs general market trends."
	case demandScore > interestScore+0.3:
		return "Strategic Choice: This field offers massive growth opportunities in the current market."
	default:
		return "The Sweet Spot: An ideal balance between your personal interests and healthy market demand."
	}
}

// skillAt returns the i-th skill or a fallback when the list is short.
func skillAt(skills []string, i int, fallback string) string {
	if i < len(skills) {
		return skills[i]
	}
	return fallback
}
