package cmd

// summaryPromptTemplate is the fixed instruction block placed in front of every article.
const summaryPromptTemplate = `Please summarize the following article using this exact format. IMPORTANT Use only this format and no other:

> [!Abstract]- 
>**Summary:**
	>>[One-sentence overview of the article's main point in 30-45 words.] 
	>
>**The details:** 
	> - [Key point #1]
	> - [Key point #2]
	> - [Key point #3]                                                                                     
(Include 3--5 concise bullet points highlighting the most important factual or contextual details.)
>
>**Why it matters:**                                                                                  
     >>[Briefly explain the significance or impact of the article's content. Focus on why readers should care or what the broader implications are.]

Make sure the summary is:
- Succinct (no fluff)
- Fact-based
- Easy to skim
- Written in plain, neutral, professional language
- Written in markdown format

Article to summarize:
`

// buildSummaryPrompt wraps the article in the summary instructions. The article is
// appended verbatim, without escaping.
func buildSummaryPrompt(article string) string {
	return summaryPromptTemplate + article
}
