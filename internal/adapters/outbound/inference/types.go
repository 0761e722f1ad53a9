package inference

// Datatype_FP32 is the Open Inference Protocol name of a 32-bit float tensor.
const Datatype_FP32 = "FP32"

// InferInputTensor is one named input of an inference request.
type InferInputTensor struct {
	Name     string    `json:"name"`
	Shape    []int     `json:"shape"`
	Datatype string    `json:"datatype"`
	Data     []float32 `json:"data"`
}

// InferRequestedOutput selects an output tensor by name.
type InferRequestedOutput struct {
	Name string `json:"name"`
}

// InferRequest is the body of POST /v2/models/{model}/infer.
type InferRequest struct {
	ID      string                 `json:"id,omitempty"`
	Inputs  []InferInputTensor     `json:"inputs"`
	Outputs []InferRequestedOutput `json:"outputs,omitempty"`
}

// InferOutputTensor is one named output of an inference response.
// Data is decoded as float64 because servers may encode FP32 values with full precision.
type InferOutputTensor struct {
	Name     string    `json:"name"`
	Shape    []int     `json:"shape"`
	Datatype string    `json:"datatype"`
	Data     []float64 `json:"data"`
}

// InferResponse is the body returned by the infer endpoint.
type InferResponse struct {
	ModelName    string              `json:"model_name"`
	ModelVersion string              `json:"model_version,omitempty"`
	ID           string              `json:"id,omitempty"`
	Outputs      []InferOutputTensor `json:"outputs"`
}

// TensorMetadata describes a model input or output.
type TensorMetadata struct {
	Name     string `json:"name"`
	Datatype string `json:"datatype"`
	Shape    []int  `json:"shape"`
}

// ModelMetadata is the body returned by GET /v2/models/{model}.
type ModelMetadata struct {
	Name     string           `json:"name"`
	Versions []string         `json:"versions,omitempty"`
	Platform string           `json:"platform"`
	Inputs   []TensorMetadata `json:"inputs"`
	Outputs  []TensorMetadata `json:"outputs"`
}

// ErrorResponse is the body returned by the model server on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
