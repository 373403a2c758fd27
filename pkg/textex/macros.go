package textex

import "github.com/yaklabco/gomathdoc/pkg/mml"

// symbolMacro maps a control-sequence name to a token node.
type symbolMacro struct {
	kind mml.NodeKind
	text string

	// upright marks identifiers rendered in an upright font
	// (function names like \sin).
	upright bool
}

// symbolMacros is the table of control sequences that expand to a single
// token node. Structural macros (\frac, \sqrt, \text) are handled by the
// parser directly.
//
//nolint:gochecknoglobals // Read-only macro table shared by all parsers
var symbolMacros = map[string]symbolMacro{
	// Lowercase Greek.
	"alpha":   {mml.KindIdentifier, "α", false},
	"beta":    {mml.KindIdentifier, "β", false},
	"gamma":   {mml.KindIdentifier, "γ", false},
	"delta":   {mml.KindIdentifier, "δ", false},
	"epsilon": {mml.KindIdentifier, "ε", false},
	"zeta":    {mml.KindIdentifier, "ζ", false},
	"eta":     {mml.KindIdentifier, "η", false},
	"theta":   {mml.KindIdentifier, "θ", false},
	"iota":    {mml.KindIdentifier, "ι", false},
	"kappa":   {mml.KindIdentifier, "κ", false},
	"lambda":  {mml.KindIdentifier, "λ", false},
	"mu":      {mml.KindIdentifier, "μ", false},
	"nu":      {mml.KindIdentifier, "ν", false},
	"xi":      {mml.KindIdentifier, "ξ", false},
	"pi":      {mml.KindIdentifier, "π", false},
	"rho":     {mml.KindIdentifier, "ρ", false},
	"sigma":   {mml.KindIdentifier, "σ", false},
	"tau":     {mml.KindIdentifier, "τ", false},
	"upsilon": {mml.KindIdentifier, "υ", false},
	"phi":     {mml.KindIdentifier, "φ", false},
	"chi":     {mml.KindIdentifier, "χ", false},
	"psi":     {mml.KindIdentifier, "ψ", false},
	"omega":   {mml.KindIdentifier, "ω", false},

	// Uppercase Greek.
	"Gamma":   {mml.KindIdentifier, "Γ", true},
	"Delta":   {mml.KindIdentifier, "Δ", true},
	"Theta":   {mml.KindIdentifier, "Θ", true},
	"Lambda":  {mml.KindIdentifier, "Λ", true},
	"Xi":      {mml.KindIdentifier, "Ξ", true},
	"Pi":      {mml.KindIdentifier, "Π", true},
	"Sigma":   {mml.KindIdentifier, "Σ", true},
	"Upsilon": {mml.KindIdentifier, "Υ", true},
	"Phi":     {mml.KindIdentifier, "Φ", true},
	"Psi":     {mml.KindIdentifier, "Ψ", true},
	"Omega":   {mml.KindIdentifier, "Ω", true},

	// Binary and relational operators.
	"pm":     {mml.KindOperator, "±", false},
	"mp":     {mml.KindOperator, "∓", false},
	"times":  {mml.KindOperator, "×", false},
	"div":    {mml.KindOperator, "÷", false},
	"cdot":   {mml.KindOperator, "⋅", false},
	"ast":    {mml.KindOperator, "∗", false},
	"circ":   {mml.KindOperator, "∘", false},
	"bullet": {mml.KindOperator, "•", false},
	"le":     {mml.KindOperator, "≤", false},
	"leq":    {mml.KindOperator, "≤", false},
	"ge":     {mml.KindOperator, "≥", false},
	"geq":    {mml.KindOperator, "≥", false},
	"ne":     {mml.KindOperator, "≠", false},
	"neq":    {mml.KindOperator, "≠", false},
	"approx": {mml.KindOperator, "≈", false},
	"equiv":  {mml.KindOperator, "≡", false},
	"sim":    {mml.KindOperator, "∼", false},
	"propto": {mml.KindOperator, "∝", false},
	"ll":     {mml.KindOperator, "≪", false},
	"gg":     {mml.KindOperator, "≫", false},

	// Arrows.
	"to":             {mml.KindOperator, "→", false},
	"rightarrow":     {mml.KindOperator, "→", false},
	"leftarrow":      {mml.KindOperator, "←", false},
	"leftrightarrow": {mml.KindOperator, "↔", false},
	"Rightarrow":     {mml.KindOperator, "⇒", false},
	"Leftarrow":      {mml.KindOperator, "⇐", false},
	"Leftrightarrow": {mml.KindOperator, "⇔", false},
	"mapsto":         {mml.KindOperator, "↦", false},

	// Large operators.
	"sum":    {mml.KindOperator, "∑", false},
	"prod":   {mml.KindOperator, "∏", false},
	"int":    {mml.KindOperator, "∫", false},
	"iint":   {mml.KindOperator, "∬", false},
	"oint":   {mml.KindOperator, "∮", false},
	"bigcup": {mml.KindOperator, "⋃", false},
	"bigcap": {mml.KindOperator, "⋂", false},

	// Set and logic symbols.
	"in":        {mml.KindOperator, "∈", false},
	"notin":     {mml.KindOperator, "∉", false},
	"subset":    {mml.KindOperator, "⊂", false},
	"subseteq":  {mml.KindOperator, "⊆", false},
	"supset":    {mml.KindOperator, "⊃", false},
	"supseteq":  {mml.KindOperator, "⊇", false},
	"cup":       {mml.KindOperator, "∪", false},
	"cap":       {mml.KindOperator, "∩", false},
	"setminus":  {mml.KindOperator, "∖", false},
	"emptyset":  {mml.KindIdentifier, "∅", false},
	"forall":    {mml.KindOperator, "∀", false},
	"exists":    {mml.KindOperator, "∃", false},
	"neg":       {mml.KindOperator, "¬", false},
	"land":      {mml.KindOperator, "∧", false},
	"lor":       {mml.KindOperator, "∨", false},
	"implies":   {mml.KindOperator, "⟹", false},
	"therefore": {mml.KindOperator, "∴", false},

	// Miscellaneous.
	"infty":   {mml.KindIdentifier, "∞", false},
	"partial": {mml.KindIdentifier, "∂", false},
	"nabla":   {mml.KindIdentifier, "∇", false},
	"hbar":    {mml.KindIdentifier, "ℏ", false},
	"ell":     {mml.KindIdentifier, "ℓ", false},
	"Re":      {mml.KindIdentifier, "ℜ", true},
	"Im":      {mml.KindIdentifier, "ℑ", true},
	"aleph":   {mml.KindIdentifier, "ℵ", false},
	"prime":   {mml.KindOperator, "′", false},
	"ldots":   {mml.KindOperator, "…", false},
	"cdots":   {mml.KindOperator, "⋯", false},
	"vdots":   {mml.KindOperator, "⋮", false},
	"perp":    {mml.KindOperator, "⊥", false},
	"parallel": {mml.KindOperator, "∥", false},
	"angle":   {mml.KindOperator, "∠", false},
	"degree":  {mml.KindOperator, "°", false},

	// Upright function names.
	"sin":    {mml.KindIdentifier, "sin", true},
	"cos":    {mml.KindIdentifier, "cos", true},
	"tan":    {mml.KindIdentifier, "tan", true},
	"cot":    {mml.KindIdentifier, "cot", true},
	"sec":    {mml.KindIdentifier, "sec", true},
	"csc":    {mml.KindIdentifier, "csc", true},
	"arcsin": {mml.KindIdentifier, "arcsin", true},
	"arccos": {mml.KindIdentifier, "arccos", true},
	"arctan": {mml.KindIdentifier, "arctan", true},
	"sinh":   {mml.KindIdentifier, "sinh", true},
	"cosh":   {mml.KindIdentifier, "cosh", true},
	"tanh":   {mml.KindIdentifier, "tanh", true},
	"log":    {mml.KindIdentifier, "log", true},
	"ln":     {mml.KindIdentifier, "ln", true},
	"lg":     {mml.KindIdentifier, "lg", true},
	"exp":    {mml.KindIdentifier, "exp", true},
	"lim":    {mml.KindIdentifier, "lim", true},
	"max":    {mml.KindIdentifier, "max", true},
	"min":    {mml.KindIdentifier, "min", true},
	"sup":    {mml.KindIdentifier, "sup", true},
	"inf":    {mml.KindIdentifier, "inf", true},
	"det":    {mml.KindIdentifier, "det", true},
	"gcd":    {mml.KindIdentifier, "gcd", true},
	"mod":    {mml.KindIdentifier, "mod", true},

	// Escaped literals.
	"{": {mml.KindOperator, "{", false},
	"}": {mml.KindOperator, "}", false},
	"$": {mml.KindOperator, "$", false},
	"%": {mml.KindOperator, "%", false},
	"&": {mml.KindOperator, "&", false},
	"#": {mml.KindOperator, "#", false},
	"_": {mml.KindOperator, "_", false},
	"\\": {mml.KindOperator, "\n", false},
	",":  {mml.KindText, " ", false},
	" ":  {mml.KindText, " ", false},
	"quad": {mml.KindText, "  ", false},
	"qquad": {mml.KindText, "    ", false},
}

// expand returns the node for a symbol macro, or nil if the name is not a
// symbol macro.
func expand(name string) *mml.Node {
	m, ok := symbolMacros[name]
	if !ok {
		return nil
	}
	n := mml.NewToken(m.kind, m.text)
	if m.upright {
		n.SetAttr("mathvariant", "normal")
	}
	return n
}
