package dto

type SubmitCredentialsRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
	KeyId       string `json:"key_id" validate:"required"`
	IssuerId    string `json:"issuer_id" validate:"required"`
	PrivateKey  string `json:"private_key" validate:"required"`
}

type WebDeploymentResponse struct {
	Phase        string `json:"phase"`
	PublishedURL string `json:"published_url,omitempty"`
}

type DeploymentStepDTO struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type AppStoreDeploymentResponse struct {
	Phase string              `json:"phase"`
	Steps []DeploymentStepDTO `json:"steps,omitempty"`
}
