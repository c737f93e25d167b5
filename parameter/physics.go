package parameter

// Gravity is the downward acceleration applied by gravity components, units per tick squared
const Gravity = 0.2
