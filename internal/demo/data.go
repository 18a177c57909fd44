package demo

// narrationList is one labeled block of static walkthrough content.
type narrationList struct {
	Label string
	Items []string
}

// analysisResults is the fixed "code analysis" content. It describes the
// hypothetical Segmentation class the walkthrough narrates over and is
// printed regardless of actual file content.
var analysisResults = []narrationList{
	{Label: "methods", Items: []string{
		"__init__", "load_models", "get_person_model_output",
		"get_fg_model_output", "get_post_process_img_by_inpaint_with_edges",
		"FB_blur_fusion_foreground_estimator_2", "FB_blur_fusion_foreground_estimator",
		"get_refined_img", "show_log", "execute",
	}},
	{Label: "dependencies", Items: []string{
		"torch", "cv2", "numpy", "PIL", "time",
	}},
	{Label: "key_features", Items: []string{
		"Foreground/background segmentation",
		"Edge-guided inpainting",
		"Super resolution upscaling",
		"Blur fusion foreground estimation",
		"Multi-device support (CPU/CUDA)",
	}},
	{Label: "performance_considerations", Items: []string{
		"Processing dimensions: 1024x1024",
		"Input size limits: 512-2048px",
		"Time logging for performance monitoring",
		"Memory-efficient tensor operations",
	}},
}

// analysisClassName is the class the fixed analysis content describes.
const analysisClassName = "Segmentation"

// optimizations is the fixed "optimization suggestions" content.
var optimizations = []narrationList{
	{Label: "Performance Improvements", Items: []string{
		"Add GPU memory management for CUDA operations",
		"Implement batch processing for multiple images",
		"Cache model loading to avoid repeated initialization",
		"Use torch.jit for model compilation",
		"Add async processing for I/O operations",
	}},
	{Label: "Code Quality", Items: []string{
		"Add type hints for better IDE support",
		"Implement proper error handling with custom exceptions",
		"Add docstrings for all methods",
		"Split large execute() method into smaller functions",
		"Add configuration validation",
	}},
	{Label: "Architectural Suggestions", Items: []string{
		"Implement factory pattern for model loading",
		"Add dependency injection for better testability",
		"Create separate classes for post-processing operations",
		"Add logging framework instead of print statements",
		"Implement proper resource management with context managers",
	}},
}

// refactoringIssues lists the fixed "current issues" of the refactoring plan.
var refactoringIssues = []string{
	"Single large class with multiple responsibilities",
	"Mixed concerns (model loading, processing, post-processing)",
	"Hard-coded configuration values",
	"Limited error handling",
	"Tight coupling between components",
}

// refactoringLayout is the fixed proposed module layout. Order matters for
// deterministic output, so this is a slice rather than a map.
var refactoringLayout = []narrationList{
	{Label: "core/", Items: []string{
		"segmentation_engine.py - Main segmentation logic",
		"config_manager.py - Configuration handling",
		"device_manager.py - GPU/CPU device management",
	}},
	{Label: "models/", Items: []string{
		"model_loader.py - Model loading and management",
		"foreground_model.py - Foreground segmentation",
		"super_resolution.py - Image upscaling",
	}},
	{Label: "processing/", Items: []string{
		"preprocessor.py - Image preprocessing",
		"postprocessor.py - Post-processing operations",
		"edge_processor.py - Edge-guided operations",
	}},
	{Label: "utils/", Items: []string{
		"image_utils.py - Image manipulation utilities",
		"performance_logger.py - Performance monitoring",
		"validators.py - Input validation",
	}},
}

// refactoringBenefits lists the fixed expected benefits.
var refactoringBenefits = []string{
	"Better separation of concerns",
	"Improved testability",
	"Easier maintenance and debugging",
	"Enhanced reusability",
	"Better error handling and logging",
}

// testCoverageNotes describes what the written unit-test template covers.
var testCoverageNotes = []string{
	"Class initialization",
	"Model loading verification",
	"Mask-only execution",
	"Full segmentation execution",
	"Image preprocessing with different sizes",
}

// docContentNotes describes what the written documentation covers.
var docContentNotes = []string{
	"Class overview and purpose",
	"Constructor parameters",
	"Method signatures and descriptions",
	"Usage examples with code",
	"Performance characteristics",
	"Dependency requirements",
}
