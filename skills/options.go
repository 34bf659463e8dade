package skills

import (
	"encoding/json"

	maa "github.com/MaaXYZ/maa-framework-go/v4"
	"github.com/rs/zerolog/log"
)

// Options are the GUI toggles attached to the skill pipeline nodes.
type Options struct {
	EndCareer     bool   `json:"end_career"`
	SkillFile     string `json:"skill_file"`
	SkillPointCap int    `json:"skill_point_cap"`
	MaxScrolls    int    `json:"max_scrolls"`
}

// getOptionsFromAttach reads the node's attach blob. Absent or broken
// attach degrades to the defaults.
func getOptionsFromAttach(ctx *maa.Context, nodeName string) Options {
	opts := Options{
		SkillPointCap: DEFAULT_POINTS_CAP,
		MaxScrolls:    DEFAULT_MAX_SCROLLS,
	}

	raw, err := ctx.GetNodeJSON(nodeName)
	if err != nil {
		log.Warn().Err(err).Str("node", nodeName).Msg("<Skills> options unavailable, using defaults")
		return opts
	}

	var wrapper struct {
		Attach Options `json:"attach"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err != nil {
		log.Warn().Err(err).Str("node", nodeName).Msg("<Skills> options malformed, using defaults")
		return opts
	}

	opts.EndCareer = wrapper.Attach.EndCareer
	opts.SkillFile = wrapper.Attach.SkillFile
	if wrapper.Attach.SkillPointCap > 0 {
		opts.SkillPointCap = wrapper.Attach.SkillPointCap
	}
	if wrapper.Attach.MaxScrolls > 0 {
		opts.MaxScrolls = wrapper.Attach.MaxScrolls
	}
	return opts
}
