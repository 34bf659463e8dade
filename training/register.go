package training

import maa "github.com/MaaXYZ/maa-framework-go/v4"

var (
	_ maa.CustomActionRunner = &TrainingCheckAction{}
	_ maa.CustomActionRunner = &TrainingDecideAction{}
	_ maa.CustomActionRunner = &TrainingFinishAction{}
)

// Register registers all custom action components for the training package
func Register() {
	maa.AgentServerRegisterCustomAction("TrainingCheckAction", &TrainingCheckAction{})
	maa.AgentServerRegisterCustomAction("TrainingDecideAction", &TrainingDecideAction{})
	maa.AgentServerRegisterCustomAction("TrainingFinishAction", &TrainingFinishAction{})
}
