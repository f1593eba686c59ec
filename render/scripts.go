// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Embedded fallbacks for the external plotting engine. A scripts
// directory given to Logo or LineScript overrides these, allowing site
// customisation without rebuilding.

const lineScript = `# Renders the endcomp per-position table as a line plot.
library(ggplot2)

kv <- list(title = "", ymax = "1")
for (a in commandArgs(TRUE)) {
	p <- regexpr("=", a, fixed = TRUE)
	kv[[substr(a, 1, p - 1)]] <- substr(a, p + 1, nchar(a))
}

d <- read.table(kv$table, header = TRUE, sep = "\t",
	colClasses = c("integer", "numeric", "character"))
ymax <- as.numeric(kv$ymax)
if (is.na(ymax) || ymax <= 0) {
	ymax <- max(d$frac)
}
p <- ggplot(d, aes(x = pos, y = frac, colour = base)) +
	geom_line() +
	coord_cartesian(ylim = c(0, ymax)) +
	scale_colour_manual(values = c(A = "#33a02c", C = "#1f78b4", G = "#ffb300", T = "#e31a1c")) +
	xlab("position") + ylab("fraction") +
	ggtitle(kv$title)
ggsave(kv$out, plot = p, width = 8, height = 4)
`

const logoScript = `# Renders the endcomp position weight matrix as a sequence logo.
library(ggplot2)
library(ggseqlogo)

kv <- list(title = "", ymax = "1", labels = "")
for (a in commandArgs(TRUE)) {
	p <- regexpr("=", a, fixed = TRUE)
	kv[[substr(a, 1, p - 1)]] <- substr(a, p + 1, nchar(a))
}

d <- read.table(kv$table, header = TRUE, sep = "\t")
m <- t(as.matrix(d[, c("A", "C", "G", "T")]))
p <- ggseqlogo(m, method = "custom", seq_type = "dna") +
	ylim(0, as.numeric(kv$ymax)) +
	ggtitle(kv$title)
labs <- strsplit(kv$labels, ",", fixed = TRUE)[[1]]
if (length(labs) == ncol(m)) {
	p <- p + scale_x_continuous(breaks = seq_along(labs), labels = labs)
}
ggsave(kv$out, plot = p, width = 10, height = 3)
`
