package skills

import maa "github.com/MaaXYZ/maa-framework-go/v4"

var (
	_ maa.CustomActionRunner = &SkillsCapCheckAction{}
	_ maa.CustomActionRunner = &SkillsScanAction{}
	_ maa.CustomActionRunner = &SkillsPlanAction{}
	_ maa.CustomActionRunner = &SkillsPurchaseStepAction{}
	_ maa.CustomActionRunner = &SkillsFinishAction{}
)

// Register registers all custom action components for the skills package
func Register() {
	maa.AgentServerRegisterCustomAction("SkillsCapCheckAction", &SkillsCapCheckAction{})
	maa.AgentServerRegisterCustomAction("SkillsScanAction", &SkillsScanAction{})
	maa.AgentServerRegisterCustomAction("SkillsPlanAction", &SkillsPlanAction{})
	maa.AgentServerRegisterCustomAction("SkillsPurchaseStepAction", &SkillsPurchaseStepAction{})
	maa.AgentServerRegisterCustomAction("SkillsFinishAction", &SkillsFinishAction{})
}
