package modetype

// Replicated introduces duplicate parent-to-child edges, so it is neither
// unique nor branchless. The source declares this kind but wires no
// hooks to it beyond the ModeTypeImpl defaults, and its intended
// iteration strategy isn't documented anywhere in the retrieved source;
// it is carried here, per that ambiguity, as a structurally valid but
// non-iterable placeholder — every capability bit false, every hook nil,
// so lowering code that reaches it via a capability check simply finds
// nothing supported rather than mis-firing a guessed-at strategy.
var Replicated = &ModeType{
	Name: "replicated",
}
