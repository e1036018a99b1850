package config

const configTemplate = `# winston configuration file
# Every value here can be overridden by an environment variable
# (OPENAI_API_KEY, OPENAI_MODEL) or a command-line flag.

# Your OpenAI API key. Prefer the OPENAI_API_KEY environment variable if
# you don't want the key stored on disk.
# api_key = "sk-..."

# Base URL of the completion API.
# api_endpoint = "https://api.openai.com/v1"

model = "gpt-3.5-turbo-instruct"
max_tokens = 2048
temperature = 0.7

# Sampling and penalty parameters.
# top_p = 1.0
# frequency_penalty = 0.0
# presence_penalty = 0.0

# Stop sequence. Absent means generation runs to max_tokens.
# stop = "\n"

# Request timeout in seconds.
# timeout = 30.0
`
