// Package llama3 memory pool documentation.
//
// This file documents the memory pooling strategies used in the llama3 tokenizer
// for optimal performance and memory efficiency.

package llama3

// Pool Usage Patterns
//
// The llama3 tokenizer uses sync.Pool for one purpose:
//
// 1. State Machine Pooling (stateMachinePool)
//    - Reuses StateMachine instances across tokenization calls
//    - Reduces allocations for the input rune slice and token slice
//    - Pool never limits the number of state machines
//    - State machines are reset before reuse
//
// Token slices are not pooled on their own: each pooled StateMachine keeps
// its token slice (initial capacity 32), and Tokenize returns a freshly
// allocated copy of it.
//
// Pool Behavior and Limits
//
// State Machine Pool:
//   - No upper limit on pool size
//   - Automatically managed by Go runtime
//   - The input rune slice is released before returning to pool
//   - The token slice is reset to length 0 on reuse; capacity is preserved
//
// Thread Safety
//
// All pools are thread-safe and can be used concurrently:
//   - Multiple goroutines can tokenize text simultaneously
//   - Each gets its own state machine from the pool
//   - No locks are needed beyond what sync.Pool provides internally
//
// Memory Lifecycle
//
// 1. Allocation:
//    - First call to pool.Get() creates new instance
//    - Subsequent calls may return pooled instance or create new
//
// 2. Usage:
//    - Instance is used for one tokenization operation
//    - Results are copied before returning instance to pool
//
// 3. Return to Pool:
//    - The input rune slice is cleared to allow garbage collection
//    - The token slice keeps its capacity for the next use
//
// 4. Garbage Collection:
//    - Go runtime may clear pools during GC
//    - This prevents unbounded memory growth
//    - Pool will repopulate as needed
//
// Performance Characteristics
//
// Benchmarks show 36% memory reduction with pooling:
//   - Small text (13 chars): 160B → 120B allocated
//   - Large text (1.3KB): 44KB → 28KB allocated
//   - Performance remains comparable or slightly better
//
// Best Practices
//
// When modifying the tokenizer:
//   1. Always clear references before returning to pool
//   2. Copy results before returning buffers to pool
//   3. Consider capacity limits to prevent memory bloat
//   4. Test with concurrent usage to ensure thread safety
//
// Example Usage Pattern:
//
//	func Tokenize(text string) []string {
//	    // Get from pool; returned when the function exits
//	    sm := getStateMachine(text)
//	    defer putStateMachine(sm)
//
//	    for sm.position < len(sm.input) {
//	        sm.matchNext()
//	    }
//
//	    // Copy results before the state machine goes back to the pool
//	    result := make([]string, len(sm.tokens))
//	    copy(result, sm.tokens)
//	    return result
//	}