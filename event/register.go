package event

import maa "github.com/MaaXYZ/maa-framework-go/v4"

var (
	_ maa.CustomRecognitionRunner = &EventCountChoicesRecognition{}
	_ maa.CustomActionRunner      = &EventDecideAction{}
)

// Register registers all custom components for the event package
func Register() {
	maa.AgentServerRegisterCustomRecognition("EventCountChoices", &EventCountChoicesRecognition{})
	maa.AgentServerRegisterCustomAction("EventDecideAction", &EventDecideAction{})
}
