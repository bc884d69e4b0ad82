package lwe

// KeySwitchLWEToLWE is the key-switching entry point the source exposes
// and this core declines to implement: it returns ct unchanged. A real
// key switch requires a key-switching-key generator, which is out of
// scope here; this stub exists so callers migrating from the original
// API have somewhere to land, not as a cryptographic operation.
func KeySwitchLWEToLWE(ct Ciphertext) Ciphertext {
	return ct
}
