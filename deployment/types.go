package deployment

//Input - Struct that represents the input to deployment
type Input struct {
	PayloadLink string `json:"payload_link"`
}

//Output - represents output from deployment, consumed by the calling tool.
//Connectors holds the connector list serialized as a JSON string because the
//external data convention only admits string values.
type Output struct {
	Connectors     string `json:"connectors"`
	CompartmentID  string `json:"compartment_id"`
	HomeSecretOCID string `json:"home_secret_ocid"`
}
