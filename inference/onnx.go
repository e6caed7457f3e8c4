// onnx.go - onnxruntime-backed Model implementation

package inference // Declares the package name

import ( // Import required packages
	"fmt"  // Error wrapping
	"sync" // One-time runtime initialization

	"caloriq-backend/imaging" // Input tensor

	ort "github.com/yalue/onnxruntime_go" // ONNX Runtime bindings
)

var ( // Process-wide onnxruntime environment
	runtimeOnce sync.Once
	runtimeErr  error
)

// initRuntime initializes the onnxruntime environment once per process.
func initRuntime(libPath string) error {
	runtimeOnce.Do(func() {
		if libPath != "" { // Empty path keeps the library's platform default
			ort.SetSharedLibraryPath(libPath)
		}
		runtimeErr = ort.InitializeEnvironment()
	})
	return runtimeErr
}

// ShutdownRuntime tears down the onnxruntime environment if it was started.
func ShutdownRuntime() error {
	if !ort.IsInitialized() {
		return nil
	}
	return ort.DestroyEnvironment()
}

// onnxModel wraps one session over an exported classifier graph. Exported
// graphs run in inference mode: no dropout and no gradient tracking.
type onnxModel struct {
	session *ort.DynamicAdvancedSession
	classes int64 // Length of the output vector
}

// ONNXLoader returns a Loader for ONNX artifacts producing classes outputs.
// libPath points at the onnxruntime shared library.
func ONNXLoader(libPath string, classes int) Loader {
	return func(path string) (Model, error) {
		if err := initRuntime(libPath); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}

		// STEP 1: Discover the graph's input and output names
		inputs, outputs, err := ort.GetInputOutputInfo(path)
		if err != nil {
			return nil, fmt.Errorf("inspect model %s: %w", path, err)
		}
		if len(inputs) != 1 || len(outputs) != 1 {
			return nil, fmt.Errorf("model %s: expected 1 input and 1 output, got %d and %d", path, len(inputs), len(outputs))
		}

		// STEP 2: Create a session that accepts per-call tensors
		session, err := ort.NewDynamicAdvancedSession(path,
			[]string{inputs[0].Name}, []string{outputs[0].Name}, nil)
		if err != nil {
			return nil, fmt.Errorf("load model %s: %w", path, err)
		}
		return &onnxModel{session: session, classes: int64(classes)}, nil
	}
}

// Run allocates input and output tensors for this call only and destroys them
// on every path.
func (m *onnxModel) Run(in *imaging.Tensor) ([]float32, error) {
	input, err := ort.NewTensor(ort.NewShape(in.Shape[:]...), in.Data)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(in.Shape[0], m.classes))
	if err != nil {
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	defer output.Destroy()

	if err := m.session.Run([]ort.Value{input}, []ort.Value{output}); err != nil {
		return nil, fmt.Errorf("run model: %w", err)
	}
	return append([]float32(nil), output.GetData()...), nil // Copy out before Destroy
}

func (m *onnxModel) Close() error {
	return m.session.Destroy()
}
