package constant

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// Fixed conversation texts. The conversation log only ever carries these
// generic messages; error detail goes to the operational log.
const (
	SessionGreetingMessage = "Hello! What should we build today? You can also use the Search tab to find visual inspiration."

	SynthesisAckMessage = "I've updated the code based on your request. Check out the preview!"

	SynthesisFailureMessage = "Sorry, I encountered an error. Please try again."

	VisualContextAddedMessage = "Visual context added! Describe the changes you want based on this image."
)

// Event bus topics / event types.
const (
	DefaultSessionEventsTopic = "STUDIO_SESSION_EVENTS"

	EventSessionCreated        = "session.created"
	EventTurnAppended          = "turn.appended"
	EventArtifactReplaced      = "artifact.replaced"
	EventViewChanged           = "view.changed"
	EventVisualContextAttached = "visual_context.attached"
	EventVisualContextCleared  = "visual_context.cleared"
	EventDeploymentPhase       = "deployment.phase"
)
