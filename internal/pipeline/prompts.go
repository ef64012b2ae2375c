package pipeline

// Stage prompts. Each one states the formatting contract its parser relies
// on and pins the output language to the input's language; the upstream
// text is appended verbatim.

const summaryPrompt = `You are a lecture summarization assistant.

Important rules:
- Use ONLY the information present in the transcript.
- Do NOT add external knowledge.
- Do NOT use bold or markdown formatting.
- CRITICAL: Detect the language of the transcript and respond EXCLUSIVELY in that same language.
- Maintain the SAME language as the transcript for all bullet points.
- Return plain bullet points using "-" only.

Transcript:
%s`

const flashcardsPrompt = `Generate 5 flashcards from the summary.

Rules:
- Use ONLY the summary content.
- CRITICAL: Maintain the EXACT SAME language as the summary. If the summary is in Tamil, generate Tamil flashcards. If Hindi, generate Hindi.
- Do NOT use markdown or bold.
- Format strictly:

Q1: question
A1: answer

Generate exactly 5.

Summary:
%s`

const quizPrompt = `Generate 5 MCQs from the summary.

Rules:
- Use ONLY the summary content.
- CRITICAL: Maintain the EXACT SAME language as the summary for both questions and options.
- Do NOT add external knowledge.
- Do NOT use markdown formatting.
- Format:

1. Question
A. option
B. option
C. option
D. option
Answer: correct_letter

Generate exactly 5.

Summary:
%s`

const chatPrompt = `You are a helpful classroom assistant. You have access to the transcript of the lecture.
Your task is to answer the user's question based ONLY on the provided transcript.

CRITICAL: Detect the language of the transcript and respond EXCLUSIVELY in that same language.
If the transcript is in Tamil, answer in Tamil. If Hindi, answer in Hindi.

If the answer is not in the transcript, politely say you don't know based on the lecture content.

Transcript:
%s

User Question:
%s`
