package shell

// ResolveEnvironment exports resolveEnvironment for white-box testing.
var ResolveEnvironment = resolveEnvironment
