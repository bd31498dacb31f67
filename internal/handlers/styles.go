// SPDX-License-Identifier: MIT
package handlers

// previewStyles lays out the swatch page. Colors come from the palette's own
// root variables and the body variables, so the page follows light and dark
// mode through the "dark" class on <html>.
const previewStyles = `
:root {
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-xs: 4px;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--spacing-lg: 40px;
	--radius-sm: 4px;
	--radius-base: 6px;
	--shadow-sm: 0 1px 3px rgba(0, 0, 0, 0.1);
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	margin: 0;
	padding: var(--spacing-lg);
	line-height: 1.5;
}

h1 { font-size: 28px; font-weight: 700; margin: 0 0 var(--spacing-sm); }
h2 { font-size: 16px; font-weight: 600; margin: var(--spacing-md) 0 var(--spacing-sm); }

.description {
	max-width: 720px;
	margin-bottom: var(--spacing-md);
}

.scale {
	display: grid;
	grid-template-columns: repeat(auto-fill, minmax(88px, 1fr));
	gap: var(--spacing-sm);
}

.swatch {
	border-radius: var(--radius-base);
	box-shadow: var(--shadow-sm);
	overflow: hidden;
}

.swatch .chip { height: 56px; }

.swatch .label {
	padding: var(--spacing-xs) var(--spacing-sm);
	font-size: 12px;
	font-family: ui-monospace, monospace;
}

.swatch .value { opacity: 0.7; }

/* Mobile Responsive */
@media (max-width: 600px) {
	body { padding: var(--spacing-base); }
}
`
