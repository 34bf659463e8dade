package career

import maa "github.com/MaaXYZ/maa-framework-go/v4"

var (
	_ maa.CustomActionRunner = &CareerStateAction{}
	_ maa.CustomActionRunner = &CareerFinishAction{}
)

// Register registers all custom action components for the career package
func Register() {
	maa.AgentServerRegisterCustomAction("CareerStateAction", &CareerStateAction{})
	maa.AgentServerRegisterCustomAction("CareerFinishAction", &CareerFinishAction{})
}
